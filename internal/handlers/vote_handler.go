package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubstem/registration-service/internal/services"
	"github.com/clubstem/registration-service/internal/utils"
	"github.com/clubstem/registration-service/internal/validator"
)

// voterCookie is the client-persisted identifier used for one-vote-per-visitor
// dedup. The service treats it as an opaque string key.
const voterCookie = "site_uid"

type VoteHandler struct {
	BaseHandler
	voteService services.VoteService
}

func NewVoteHandler(voteService services.VoteService, logger utils.Logger) *VoteHandler {
	return &VoteHandler{
		BaseHandler: NewBaseHandler(logger),
		voteService: voteService,
	}
}

// Counts returns the per-role vote counts and whether this visitor has voted.
func (h *VoteHandler) Counts(c *gin.Context) {
	voterID, _ := c.Cookie(voterCookie)
	c.JSON(http.StatusOK, h.voteService.Counts(c.Request.Context(), voterID))
}

// Cast records a vote for a role and returns the updated counts.
func (h *VoteHandler) Cast(c *gin.Context) {
	var req validator.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	voterID, _ := c.Cookie(voterCookie)

	counts, err := h.voteService.CastVote(c.Request.Context(), voterID, req.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"estudiantes": counts.Estudiantes,
		"maestros":    counts.Maestros,
		"padres":      counts.Padres,
		"otros":       counts.Otros,
	})
}

// Reset clears the whole ledger. Kept for development environments.
func (h *VoteHandler) Reset(c *gin.Context) {
	h.voteService.Reset(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "reset": true})
}
