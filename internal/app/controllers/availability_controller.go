package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/app/services"
	"github.com/emrah/lessonhub/internal/middleware"
)

// AvailabilityController handles instructor availability operations
type AvailabilityController struct {
	availabilityService services.AvailabilityService
}

// NewAvailabilityController creates a new AvailabilityController
func NewAvailabilityController(availabilityService services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{
		availabilityService: availabilityService,
	}
}

// ListAvailability returns the caller's own availability rows
func (c *AvailabilityController) ListAvailability(ctx *gin.Context) {
	instructorID := middleware.SessionUserID(ctx)

	entries, err := c.availabilityService.ListForInstructor(ctx.Request.Context(), instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AvailabilityResponse{Availability: entries})
}

// CreateAvailability adds one row per submitted weekday. Instructor only.
func (c *AvailabilityController) CreateAvailability(ctx *gin.Context) {
	var req dto.CreateAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})
		return
	}

	instructorID := middleware.SessionUserID(ctx)

	if err := c.availabilityService.AddAvailability(ctx.Request.Context(), instructorID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Availability added successfully"})
}
