package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubstem/registration-service/internal/services"
	"github.com/clubstem/registration-service/internal/utils"
)

type StatsHandler struct {
	BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService, logger utils.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsService: statsService,
	}
}

// Get returns the composed public statistics. The response is always 200;
// degraded sections carry zero defaults and the degraded flag.
func (h *StatsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.Complete(c.Request.Context()))
}

type statsActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// Post handles statistics-side actions. Only the visitor counter increment
// survives here; votes go through the ledger endpoints.
func (h *StatsHandler) Post(c *gin.Context) {
	var req statsActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	switch req.Action {
	case "increment_visitors":
		if err := h.statsService.IncrementVisitors(c.Request.Context()); err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, h.statsService.Complete(c.Request.Context()))
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Unknown action",
			Details: req.Action,
		})
	}
}
