package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/app/services"
	"github.com/emrah/lessonhub/internal/middleware"
)

// InstrumentController handles instructor instrument operations
type InstrumentController struct {
	instrumentService services.InstrumentService
}

// NewInstrumentController creates a new InstrumentController
func NewInstrumentController(instrumentService services.InstrumentService) *InstrumentController {
	return &InstrumentController{
		instrumentService: instrumentService,
	}
}

// ListInstruments returns the caller's own instrument rows
func (c *InstrumentController) ListInstruments(ctx *gin.Context) {
	instructorID := middleware.SessionUserID(ctx)

	entries, err := c.instrumentService.ListForInstructor(ctx.Request.Context(), instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InstrumentsResponse{Instruments: entries})
}

// CreateInstrument adds a new instrument to the caller's list. Instructor only.
func (c *InstrumentController) CreateInstrument(ctx *gin.Context) {
	var req dto.CreateInstrumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request data"})
		return
	}

	instructorID := middleware.SessionUserID(ctx)

	if err := c.instrumentService.AddInstrument(ctx.Request.Context(), instructorID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Instrument added successfully"})
}
