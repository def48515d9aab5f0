// Package routes wires the HTTP route table to the controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krupanka/studentms/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	principalController *controllers.PrincipalController,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	api.POST("/admin/login", authController.AdminLogin)
	api.POST("/principal/login", authController.PrincipalLogin)
	api.POST("/teacher/login", authController.TeacherLogin)
	api.POST("/student/login", authController.StudentLogin)

	// --- Student routes ---
	api.POST("/student/register", studentController.Register)

	students := api.Group("/students")
	{
		// Listings accept the filter in the body or the query string, so
		// both verbs are routed to the same handler.
		students.GET("", studentController.List)
		students.POST("", studentController.List)

		students.GET("/:id", studentController.GetByID)
		students.PUT("/:id/academics", studentController.UpdateAcademics)
		students.POST("/:id/subjects", studentController.AssignSubject)
		students.PUT("/:id/subjects/:subjectId", studentController.UpdateSubject)
	}

	// --- Teacher routes ---
	teacher := api.Group("/teacher")
	{
		teacher.POST("/register", teacherController.Register)
		teacher.GET("/:id", teacherController.GetByID)
	}

	api.GET("/teachers", teacherController.List)
	api.POST("/teachers", teacherController.List)

	// --- Principal approval workflow ---
	principal := api.Group("/principal")
	{
		principal.GET("/pending-teachers", principalController.PendingTeachers)
		principal.POST("/teachers/:id/approve", principalController.DecideTeacher)
	}

	// Health check endpoint (public)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
