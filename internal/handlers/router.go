package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubstem/registration-service/internal/repositories"
	"github.com/clubstem/registration-service/internal/services"
	"github.com/clubstem/registration-service/internal/utils"
)

type HandlerManager struct {
	participantHandler *ParticipantHandler
	voteHandler        *VoteHandler
	statsHandler       *StatsHandler
	repo               repositories.Repository
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger, repo repositories.Repository) *HandlerManager {
	return &HandlerManager{
		participantHandler: NewParticipantHandler(serviceManager.Participant(), serviceManager.Export(), logger),
		voteHandler:        NewVoteHandler(serviceManager.Votes(), logger),
		statsHandler:       NewStatsHandler(serviceManager.Stats(), logger),
		repo:               repo,
	}
}

// SetupRoutes wires the request boundary. The surface mirrors the deployed
// site's API so existing clients keep working.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	api := router.Group("/api")
	{
		api.POST("/register", hm.participantHandler.Register)

		api.GET("/participants", hm.participantHandler.List)
		api.GET("/participants/export", hm.participantHandler.Export)

		api.GET("/role", hm.voteHandler.Counts)
		api.POST("/role", hm.voteHandler.Cast)
		api.DELETE("/role", hm.voteHandler.Reset)

		api.GET("/stats", hm.statsHandler.Get)
		api.POST("/stats", hm.statsHandler.Post)
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	status := http.StatusOK
	store := "up"
	if err := hm.repo.Ping(c.Request.Context()); err != nil {
		status = http.StatusServiceUnavailable
		store = "down"
	}
	c.JSON(status, gin.H{
		"status":    store,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "registration-service",
	})
}
