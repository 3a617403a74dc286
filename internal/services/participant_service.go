package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clubstem/registration-service/internal/events"
	"github.com/clubstem/registration-service/internal/models"
	"github.com/clubstem/registration-service/internal/query"
	"github.com/clubstem/registration-service/internal/repositories"
	"github.com/clubstem/registration-service/internal/validator"
)

const defaultFieldValue = "No especificado"

type participantService struct {
	repo      repositories.Repository
	stats     StatsService
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
	now       func() time.Time
}

func NewParticipantService(repo repositories.Repository, stats StatsService, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) ParticipantService {
	return &participantService{
		repo:      repo,
		stats:     stats,
		logger:    logger,
		validator: v,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *participantService) Register(ctx context.Context, req *RegisterRequest) (*models.Participant, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	email := models.NormalizeEmail(req.Email)

	// Check-then-write: two concurrent registrations with the same email can
	// both pass this read. Accepted, the store has no compare-and-swap here.
	existing, err := s.repo.Participant().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	role := models.ParticipantRole(req.Role)
	if role == "" {
		role = models.RoleEstudiante
	}

	now := s.now()
	participant := &models.Participant{
		ID:               newParticipantID(now),
		FullName:         strings.TrimSpace(req.FullName),
		Email:            email,
		Age:              req.Age,
		Grade:            req.Grade,
		School:           orDefault(req.School),
		Category:         req.Category,
		Experience:       orDefault(req.Experience),
		Motivation:       orDefault(req.Motivation),
		Role:             role,
		RegistrationDate: now,
		Status:           models.StatusActive,
	}

	if err := s.repo.Participant().Create(ctx, participant); err != nil {
		return nil, err
	}

	s.logger.Info("participant registered",
		"participant_id", participant.ID,
		"category", participant.Category,
		"role", participant.Role)

	// Rollup counters are best-effort: a failed update never rolls back or
	// fails the registration.
	if err := s.stats.RecordRegistration(ctx, role); err != nil {
		s.logger.Warn("failed to update registration statistics", "error", err)
	}

	if err := s.publisher.Publish(events.TopicParticipantRegistered, events.ParticipantRegistered{
		ParticipantID: participant.ID,
		Category:      participant.Category,
		Role:          string(participant.Role),
		RegisteredAt:  participant.RegistrationDate,
	}); err != nil {
		s.logger.Warn("failed to publish registration event", "error", err)
	}

	return participant, nil
}

func (s *participantService) List(ctx context.Context, req ListParticipantsRequest) (*ParticipantListResponse, error) {
	ids, err := s.repo.Participant().ListIDs(ctx, 0, -1)
	if err != nil {
		return nil, err
	}

	participants := make([]*models.Participant, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.Participant().GetByID(ctx, id)
		if err != nil {
			// One unreadable record must not abort the enumeration.
			s.logger.Warn("skipping unreadable participant", "participant_id", id, "error", err)
			continue
		}
		if p != nil {
			participants = append(participants, p)
		}
	}

	page, pagination := query.Apply(participants, query.Options{
		Category: req.Category,
		Grade:    req.Grade,
		SortBy:   req.SortBy,
		Page:     req.Page,
		Limit:    req.Limit,
	})

	resp := &ParticipantListResponse{
		Participants: make([]models.PublicParticipant, 0, len(page)),
		Pagination:   pagination,
	}
	for _, p := range page {
		resp.Participants = append(resp.Participants, p.PublicView())
	}

	if req.IncludeStats == nil || *req.IncludeStats {
		snapshot := s.stats.Snapshot(ctx)
		resp.Statistics = &snapshot
	}

	return resp, nil
}

// newParticipantID combines a millisecond timestamp with a random suffix.
// Collisions are treated as negligible, not formally prevented.
func newParticipantID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("participant_%d_%s", now.UnixMilli(), suffix)
}

func orDefault(v string) string {
	if strings.TrimSpace(v) == "" {
		return defaultFieldValue
	}
	return v
}
