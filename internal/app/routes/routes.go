package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emrah/lessonhub/internal/app/controllers"
	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	studentController *controllers.StudentController,
	lessonController *controllers.LessonController,
	availabilityController *controllers.AvailabilityController,
	timeOffController *controllers.TimeOffController,
	instrumentController *controllers.InstrumentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public session routes ---
	api.POST("/login", authController.Login)
	api.GET("/check-auth", authController.CheckAuth)
	api.POST("/logout", authController.Logout)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		adminOnly := authMiddleware.RoleRequired(string(models.RoleAdmin))
		instructorOnly := authMiddleware.RoleRequired(string(models.RoleInstructor))

		// Users: readable by any session, created by admins
		authenticated.GET("/users", userController.ListUsers)
		authenticated.POST("/users", adminOnly, userController.CreateUser)

		// Students: readable by any session, created by admins
		authenticated.GET("/students", studentController.ListStudents)
		authenticated.POST("/students", adminOnly, studentController.CreateStudent)

		// Lessons: the full schedule is admin territory
		authenticated.GET("/lessons", adminOnly, lessonController.ListLessons)
		authenticated.POST("/lessons", adminOnly, lessonController.CreateLesson)

		// Instructor-scoped resources, always filtered by the session user
		authenticated.GET("/my-lessons", instructorOnly, lessonController.ListMyLessons)
		authenticated.POST("/lesson-notes", instructorOnly, lessonController.UpdateLessonNotes)

		authenticated.GET("/availability", availabilityController.ListAvailability)
		authenticated.POST("/availability", instructorOnly, availabilityController.CreateAvailability)

		authenticated.GET("/time-off", timeOffController.ListTimeOff)
		authenticated.POST("/time-off", instructorOnly, timeOffController.CreateTimeOff)

		authenticated.GET("/instruments", instrumentController.ListInstruments)
		authenticated.POST("/instruments", instructorOnly, instrumentController.CreateInstrument)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
