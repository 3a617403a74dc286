package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubstem/registration-service/internal/services"
	"github.com/clubstem/registration-service/internal/utils"
)

type ParticipantHandler struct {
	BaseHandler
	participantService services.ParticipantService
	exportService      services.ExportService
}

func NewParticipantHandler(participantService services.ParticipantService, exportService services.ExportService, logger utils.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		BaseHandler:        NewBaseHandler(logger),
		participantService: participantService,
		exportService:      exportService,
	}
}

// Register handles a sign-up request.
func (h *ParticipantHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	participant, err := h.participantService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Registro exitoso",
		Data: services.RegistrationResponse{
			ID:               participant.ID,
			FullName:         participant.FullName,
			Category:         participant.Category,
			RegistrationDate: participant.RegistrationDate,
		},
	})
}

// List returns the paginated public roster, optionally with a statistics
// snapshot attached.
func (h *ParticipantHandler) List(c *gin.Context) {
	var req services.ListParticipantsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "listing participants", "page", req.Page, "sort_by", req.SortBy)

	resp, err := h.participantService.List(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"participants": resp.Participants,
		"pagination":   resp.Pagination,
		"statistics":   resp.Statistics,
		"timestamp":    time.Now().UTC(),
	})
}

// Export streams the roster spreadsheet.
func (h *ParticipantHandler) Export(c *gin.Context) {
	filename := fmt.Sprintf("participantes-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.exportService.WriteRoster(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("roster export failed", "error", err)
		// Headers may already be out; abort the stream rather than emit JSON.
		c.Status(http.StatusInternalServerError)
	}
}
