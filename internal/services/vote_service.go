package services

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/clubstem/registration-service/internal/events"
	"github.com/clubstem/registration-service/internal/models"
	"github.com/clubstem/registration-service/internal/repositories"
)

type voteService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.Publisher
	now       func() time.Time
}

func NewVoteService(repo repositories.Repository, logger *slog.Logger, publisher events.Publisher) VoteService {
	return &voteService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *voteService) Counts(ctx context.Context, voterID string) models.RoleVoteCounts {
	counts := models.RoleVoteCounts{}

	// Each cardinality is independently best-effort: one failed read falls
	// back to 0 without failing the whole response.
	for _, role := range models.VoteRoles() {
		n, err := s.repo.Votes().Count(ctx, role)
		if err != nil {
			s.logger.Warn("vote count read failed", "role", role, "error", err)
			counts.Degraded = true
			continue
		}
		setRoleCount(&counts, role, n)
	}

	if voterID != "" {
		voted, err := s.repo.Votes().HasVoted(ctx, voterID)
		if err != nil {
			s.logger.Warn("voted-set membership read failed", "error", err)
			counts.Degraded = true
		} else {
			counts.Voted = voted
		}
	}

	return counts
}

func (s *voteService) CastVote(ctx context.Context, voterID, role string) (models.RoleVoteCounts, error) {
	if !slices.Contains(models.VoteRoles(), role) {
		return models.RoleVoteCounts{}, ErrInvalidRole
	}
	if voterID == "" {
		return models.RoleVoteCounts{}, ErrMissingVoter
	}

	// Membership check and the two set adds are separate operations; a voter
	// racing against themselves can slip through, which the ledger accepts.
	voted, err := s.repo.Votes().HasVoted(ctx, voterID)
	if err != nil {
		return models.RoleVoteCounts{}, err
	}
	if voted {
		return models.RoleVoteCounts{}, ErrAlreadyVoted
	}

	if err := s.repo.Votes().AddVote(ctx, voterID, role); err != nil {
		return models.RoleVoteCounts{}, err
	}

	s.logger.Info("role vote cast", "role", role)

	if err := s.publisher.Publish(events.TopicRoleVoteCast, events.RoleVoteCast{
		Role:   role,
		CastAt: s.now(),
	}); err != nil {
		s.logger.Warn("failed to publish vote event", "error", err)
	}

	counts := s.Counts(ctx, voterID)
	return counts, nil
}

func (s *voteService) Reset(ctx context.Context) {
	// Best-effort: partial failures are logged and swallowed.
	if err := s.repo.Votes().Reset(ctx); err != nil {
		s.logger.Warn("vote ledger reset incomplete", "error", err)
	}
}

func setRoleCount(counts *models.RoleVoteCounts, role string, n int64) {
	switch role {
	case "estudiantes":
		counts.Estudiantes = n
	case "maestros":
		counts.Maestros = n
	case "padres":
		counts.Padres = n
	case "otros":
		counts.Otros = n
	}
}
