package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/app/services"
	"github.com/emrah/lessonhub/internal/middleware"
)

// StudentController handles student management operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents returns all students
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentsResponse{Students: students})
}

// CreateStudent adds a new student. Admin only.
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})
		return
	}

	if err := c.studentService.CreateStudent(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Student added successfully"})
}
