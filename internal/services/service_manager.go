package services

import (
	"log/slog"

	"github.com/clubstem/registration-service/internal/events"
	"github.com/clubstem/registration-service/internal/repositories"
	"github.com/clubstem/registration-service/internal/validator"
)

type serviceManager struct {
	participantService ParticipantService
	statsService       StatsService
	voteService        VoteService
	exportService      ExportService
}

// NewServiceManager wires the service set on top of a shared repository,
// logger, validator and event publisher.
func NewServiceManager(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) ServiceManager {
	stats := NewStatsService(repo, logger)
	return &serviceManager{
		participantService: NewParticipantService(repo, stats, logger, v, publisher),
		statsService:       stats,
		voteService:        NewVoteService(repo, logger, publisher),
		exportService:      NewExportService(repo, logger),
	}
}

func (m *serviceManager) Participant() ParticipantService { return m.participantService }
func (m *serviceManager) Stats() StatsService             { return m.statsService }
func (m *serviceManager) Votes() VoteService              { return m.voteService }
func (m *serviceManager) Export() ExportService           { return m.exportService }
