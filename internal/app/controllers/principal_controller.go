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

// PrincipalController handles the teacher approval workflow.
type PrincipalController struct {
	teacherService *services.TeacherService
	logger         zerolog.Logger
}

// NewPrincipalController creates a new PrincipalController.
func NewPrincipalController(teacherService *services.TeacherService, logger zerolog.Logger) *PrincipalController {
	return &PrincipalController{teacherService: teacherService, logger: logger}
}

// PendingTeachers lists all teachers awaiting a decision.
// @Summary List pending teachers
// @Tags principal
// @Router /api/principal/pending-teachers [get]
func (c *PrincipalController) PendingTeachers(ctx *gin.Context) {
	pending := c.teacherService.Pending()

	out := make([]dto.TeacherSummary, 0, len(pending))
	for _, teacher := range pending {
		out = append(out, dto.NewTeacherSummary(teacher))
	}
	ctx.JSON(http.StatusOK, out)
}

// DecideTeacher approves (action 1) or rejects a pending teacher.
// @Summary Approve or reject a teacher
// @Tags principal
// @Router /api/principal/teachers/{id}/approve [post]
func (c *PrincipalController) DecideTeacher(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	fields := payload.Parse(ctx.Request.Body)

	approved, err := c.teacherService.Decide(id, fields.Int("action"), fields.String("password"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Teacher rejected"
	if approved {
		message = "Teacher approved"
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
