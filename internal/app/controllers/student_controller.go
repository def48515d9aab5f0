package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appauth "github.com/krupanka/studentms/internal/app/auth"
	"github.com/krupanka/studentms/internal/app/models"
	"github.com/krupanka/studentms/internal/app/models/dto"
	"github.com/krupanka/studentms/internal/app/services"
	"github.com/krupanka/studentms/internal/middleware"
	"github.com/krupanka/studentms/internal/pkg/payload"
)

// StudentController handles student registration, listing, and the
// role-authorized academic mutations.
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{studentService: studentService, logger: logger}
}

// Register creates a new student record.
// @Summary Register a student
// @Tags students
// @Router /api/student/register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	fields := payload.Parse(ctx.Request.Body)

	student, err := c.studentService.Register(
		fields.String("name"),
		fields.String("password"),
		fields.String("email"),
		fields.String("department"),
		fields.Int("year"),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentRegisterResponse{
		StudentID: student.StudentID,
		Name:      student.Name,
		Message:   "Registration successful",
	})
}

// List returns the students visible to the caller's role. The role and
// department may arrive in the body or the query string; the body wins.
// @Summary List students by role visibility
// @Tags students
// @Router /api/students [get]
func (c *StudentController) List(ctx *gin.Context) {
	fields := payload.Parse(ctx.Request.Body)

	role := fields.String("role")
	if role == "" {
		role = ctx.Query("role")
	}
	department := fields.String("department")
	if department == "" {
		department = ctx.Query("department")
	}

	students, err := c.studentService.List(
		role,
		department,
		fields.String("email"),
		fields.String("principalPassword"),
		fields.Int("studentId"),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.StudentSummary, 0, len(students))
	for _, student := range students {
		out = append(out, dto.NewStudentSummary(student))
	}
	ctx.JSON(http.StatusOK, out)
}

// GetByID returns one student including subjects. An unparsable ID
// behaves like an unknown one.
// @Summary Fetch a student by ID
// @Tags students
// @Router /api/students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))

	student, err := c.studentService.Get(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentDetail(student))
}

// UpdateAcademics overwrites a student's CGPA and attendance.
// @Summary Update CGPA and attendance
// @Tags students
// @Router /api/students/{id}/academics [put]
func (c *StudentController) UpdateAcademics(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	fields := payload.Parse(ctx.Request.Body)

	// The attendance key falls back whenever attendance_percent decodes to
	// zero, absent or explicit.
	attendance := fields.Number("attendance_percent")
	if attendance == 0 {
		attendance = fields.Number("attendance")
	}

	student, err := c.studentService.UpdateAcademics(
		id,
		fields.String("role"),
		credentialsFrom(fields),
		fields.Number("cgpa"),
		attendance,
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AcademicsResponse{
		Message:           "Academics updated",
		CGPA:              student.CGPA,
		AttendancePercent: student.Attendance,
	})
}

// AssignSubject adds a subject to a student.
// @Summary Assign a subject
// @Tags students
// @Router /api/students/{id}/subjects [post]
func (c *StudentController) AssignSubject(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	fields := payload.Parse(ctx.Request.Body)

	// Remarks start empty on assignment; only the subject update sets them.
	subject := models.Subject{
		SubjectID:         fields.String("subjectId"),
		Name:              fields.String("name"),
		Mid1:              fields.Int("mid1"),
		Mid2:              fields.Int("mid2"),
		Final:             fields.Int("final"),
		AttendancePercent: fields.Number("attendance_percent"),
	}

	assigned, err := c.studentService.AssignSubject(id, fields.String("role"), credentialsFrom(fields), subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubjectMutationResponse{
		Message:   "Subject assigned",
		SubjectID: assigned.SubjectID,
		Name:      assigned.Name,
		Marks: dto.MarksData{
			Mid1:  assigned.Mid1,
			Mid2:  assigned.Mid2,
			Final: assigned.Final,
			Total: assigned.Total(),
		},
		AttendancePercent: assigned.AttendancePercent,
	})
}

// UpdateSubject overwrites marks and attendance of an existing subject.
// @Summary Update subject marks
// @Tags students
// @Router /api/students/{id}/subjects/{subjectId} [put]
func (c *StudentController) UpdateSubject(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	fields := payload.Parse(ctx.Request.Body)

	updated, err := c.studentService.UpdateSubject(
		id,
		fields.String("role"),
		credentialsFrom(fields),
		ctx.Param("subjectId"),
		fields.Int("mid1"),
		fields.Int("mid2"),
		fields.Int("final"),
		fields.Number("attendance_percent"),
		fields.String("remarks"),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SubjectMutationResponse{
		Message:   "Subject updated",
		SubjectID: updated.SubjectID,
		Marks: dto.MarksData{
			Mid1:  updated.Mid1,
			Mid2:  updated.Mid2,
			Final: updated.Final,
			Total: updated.Total(),
		},
		AttendancePercent: updated.AttendancePercent,
	})
}

// credentialsFrom extracts the caller credentials a mutation payload may
// carry alongside its data fields.
func credentialsFrom(fields payload.Fields) appauth.Credentials {
	return appauth.Credentials{
		Password:          fields.String("password"),
		Email:             fields.String("email"),
		PrincipalPassword: fields.String("principalPassword"),
	}
}
