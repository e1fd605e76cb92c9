package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/app/services"
	"github.com/emrah/lessonhub/internal/middleware"
)

// LessonController handles lesson operations
type LessonController struct {
	lessonService services.LessonService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService services.LessonService) *LessonController {
	return &LessonController{
		lessonService: lessonService,
	}
}

// ListLessons returns every lesson with the student name joined in. Admin only.
func (c *LessonController) ListLessons(ctx *gin.Context) {
	lessons, err := c.lessonService.ListLessons(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LessonsResponse{Lessons: lessons})
}

// ListMyLessons returns lessons assigned to the session's instructor.
// The filter comes from the session, never from the request.
func (c *LessonController) ListMyLessons(ctx *gin.Context) {
	instructorID := middleware.SessionUserID(ctx)

	lessons, err := c.lessonService.ListInstructorLessons(ctx.Request.Context(), instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LessonsResponse{Lessons: lessons})
}

// CreateLesson adds a new lesson. Admin only.
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req dto.CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})
		return
	}

	if err := c.lessonService.CreateLesson(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Lesson added successfully"})
}

// UpdateLessonNotes sets the notes of a lesson owned by the session's
// instructor. A lesson that is absent or owned by someone else is reported
// uniformly as not found.
func (c *LessonController) UpdateLessonNotes(ctx *gin.Context) {
	var req dto.UpdateLessonNotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})
		return
	}

	instructorID := middleware.SessionUserID(ctx)

	if err := c.lessonService.UpdateNotes(ctx.Request.Context(), instructorID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notes updated successfully"})
}
