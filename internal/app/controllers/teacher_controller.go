package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/krupanka/studentms/internal/app/models/dto"
	"github.com/krupanka/studentms/internal/app/services"
	"github.com/krupanka/studentms/internal/middleware"
	"github.com/krupanka/studentms/internal/pkg/payload"
)

// TeacherController handles teacher registration and listing.
type TeacherController struct {
	teacherService *services.TeacherService
	logger         zerolog.Logger
}

// NewTeacherController creates a new TeacherController.
func NewTeacherController(teacherService *services.TeacherService, logger zerolog.Logger) *TeacherController {
	return &TeacherController{teacherService: teacherService, logger: logger}
}

// Register creates a teacher in the pending state.
// @Summary Register a teacher, pending principal approval
// @Tags teachers
// @Router /api/teacher/register [post]
func (c *TeacherController) Register(ctx *gin.Context) {
	fields := payload.Parse(ctx.Request.Body)

	teacher, err := c.teacherService.Register(
		fields.String("name"),
		fields.String("password"),
		fields.String("email"),
		fields.String("department"),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TeacherRegisterResponse{
		TeacherID: teacher.TeacherID,
		Message:   "Registration submitted. Pending principal approval",
	})
}

// GetByID returns one teacher. An unparsable ID behaves like an unknown
// one.
// @Summary Fetch a teacher by ID
// @Tags teachers
// @Router /api/teacher/{id} [get]
func (c *TeacherController) GetByID(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))

	teacher, err := c.teacherService.Get(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTeacherDetail(teacher))
}

// List returns approved teachers, optionally filtered by department. The
// filter may arrive in the body or the query string; the body wins.
// @Summary List approved teachers
// @Tags teachers
// @Router /api/teachers [get]
func (c *TeacherController) List(ctx *gin.Context) {
	fields := payload.Parse(ctx.Request.Body)

	department := fields.String("department")
	if department == "" {
		department = ctx.Query("department")
	}

	teachers, err := c.teacherService.List(department, fields.String("principalPassword"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.TeacherSummary, 0, len(teachers))
	for _, teacher := range teachers {
		out = append(out, dto.NewTeacherSummary(teacher))
	}
	ctx.JSON(http.StatusOK, out)
}
