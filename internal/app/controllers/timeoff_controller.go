package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/app/services"
	"github.com/emrah/lessonhub/internal/middleware"
)

// TimeOffController handles instructor time-off operations
type TimeOffController struct {
	timeOffService services.TimeOffService
}

// NewTimeOffController creates a new TimeOffController
func NewTimeOffController(timeOffService services.TimeOffService) *TimeOffController {
	return &TimeOffController{
		timeOffService: timeOffService,
	}
}

// ListTimeOff returns the caller's own time-off rows
func (c *TimeOffController) ListTimeOff(ctx *gin.Context) {
	instructorID := middleware.SessionUserID(ctx)

	entries, err := c.timeOffService.ListForInstructor(ctx.Request.Context(), instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TimeOffResponse{TimeOff: entries})
}

// CreateTimeOff adds a new time-off period. Instructor only.
func (c *TimeOffController) CreateTimeOff(ctx *gin.Context) {
	var req dto.CreateTimeOffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})
		return
	}

	instructorID := middleware.SessionUserID(ctx)

	if err := c.timeOffService.AddTimeOff(ctx.Request.Context(), instructorID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Time off added successfully"})
}
