// Package controllers handles HTTP request handling: each controller
// decodes the loose request payload, delegates to its service, and maps
// the outcome onto the wire.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/krupanka/studentms/internal/app/models"
	"github.com/krupanka/studentms/internal/app/models/dto"
	"github.com/krupanka/studentms/internal/app/services"
	"github.com/krupanka/studentms/internal/middleware"
	"github.com/krupanka/studentms/internal/pkg/payload"
)

// AuthController handles the four role login endpoints.
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

// AdminLogin verifies the shared admin secret.
// @Summary Admin login
// @Tags auth
// @Router /api/admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	fields := payload.Parse(ctx.Request.Body)

	token, err := c.authService.AdminLogin(fields.String("password"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
		Success: true,
		Role:    "admin",
		Message: "Admin login successful",
		Token:   token,
	})
}

// PrincipalLogin verifies the shared principal secret.
// @Summary Principal login
// @Tags auth
// @Router /api/principal/login [post]
func (c *AuthController) PrincipalLogin(ctx *gin.Context) {
	fields := payload.Parse(ctx.Request.Body)

	token, err := c.authService.PrincipalLogin(fields.String("password"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PrincipalLoginResponse{
		Success:     true,
		Role:        "principal",
		PrincipalID: models.PrincipalID,
		Message:     "Principal login successful",
		Token:       token,
	})
}

// TeacherLogin authenticates a teacher, gated on approval state.
// @Summary Teacher login
// @Tags auth
// @Router /api/teacher/login [post]
func (c *AuthController) TeacherLogin(ctx *gin.Context) {
	fields := payload.Parse(ctx.Request.Body)

	teacher, token, err := c.authService.TeacherLogin(fields.String("email"), fields.String("password"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherLoginResponse{
		Success:    true,
		Role:       "teacher",
		TeacherID:  teacher.TeacherID,
		Name:       teacher.Name,
		Email:      teacher.Email,
		Department: teacher.Department,
		Approved:   int(teacher.Approved),
		Password:   teacher.Password,
		Token:      token,
	})
}

// StudentLogin authenticates a student by numeric ID and password.
// @Summary Student login
// @Tags auth
// @Router /api/student/login [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	fields := payload.Parse(ctx.Request.Body)

	student, token, err := c.authService.StudentLogin(fields.Int("studentId"), fields.String("password"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentLoginResponse{
		Success:    true,
		Role:       "student",
		StudentID:  student.StudentID,
		Name:       student.Name,
		Email:      student.Email,
		Department: student.Department,
		Year:       student.Year,
		CGPA:       student.CGPA,
		Attendance: student.Attendance,
		Token:      token,
	})
}
