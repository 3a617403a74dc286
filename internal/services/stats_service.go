package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/clubstem/registration-service/internal/models"
	"github.com/clubstem/registration-service/internal/repositories"
)

// categorySampleSize bounds the index prefix scanned for the category
// distribution. The result is an approximation over the most recent
// registrations, documented as such.
const categorySampleSize = 100

type statsService struct {
	repo   repositories.Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewStatsService(repo repositories.Repository, logger *slog.Logger) StatsService {
	return &statsService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *statsService) RecordRegistration(ctx context.Context, role models.ParticipantRole) error {
	// Read-modify-write on the shared record. Concurrent registrations can
	// lose increments; the counters are informative, not authoritative.
	stats, err := s.repo.Stats().GetSiteStats(ctx)
	if err != nil {
		return err
	}

	stats.TotalParticipants++
	switch role {
	case models.RoleEstudiante:
		stats.Estudiantes++
	case models.RoleMaestro:
		stats.Maestros++
	case models.RolePadre:
		stats.Padres++
	case models.RoleOtros:
		stats.Otros++
	}
	stats.LastUpdated = s.now()

	if err := s.repo.Stats().SetSiteStats(ctx, stats); err != nil {
		return err
	}

	today := repositories.DateKey(s.now())
	daily, err := s.repo.Stats().GetDaily(ctx, today)
	if err != nil {
		return err
	}
	daily.Registrations++
	return s.repo.Stats().SetDaily(ctx, today, daily)
}

func (s *statsService) Weekly(ctx context.Context) (int, error) {
	total := 0
	for i := 0; i < 7; i++ {
		date := repositories.DateKey(s.now().AddDate(0, 0, -i))
		daily, err := s.repo.Stats().GetDaily(ctx, date)
		if err != nil {
			return 0, err
		}
		total += daily.Registrations
	}
	return total, nil
}

func (s *statsService) CategoryDistribution(ctx context.Context) (map[models.Category]int, error) {
	distribution := zeroDistribution()

	ids, err := s.repo.Participant().ListIDs(ctx, 0, categorySampleSize-1)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		p, err := s.repo.Participant().GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("skipping participant in distribution scan", "participant_id", id, "error", err)
			continue
		}
		if p == nil {
			continue
		}
		category := models.Category(p.Category)
		if _, known := distribution[category]; known {
			distribution[category]++
		}
	}
	return distribution, nil
}

func (s *statsService) Snapshot(ctx context.Context) models.AggregateStatistics {
	site, err := s.repo.Stats().GetSiteStats(ctx)
	if err != nil {
		return s.degradedSnapshot(err)
	}

	today, err := s.repo.Stats().GetDaily(ctx, repositories.DateKey(s.now()))
	if err != nil {
		return s.degradedSnapshot(err)
	}

	week, err := s.Weekly(ctx)
	if err != nil {
		return s.degradedSnapshot(err)
	}

	distribution, err := s.CategoryDistribution(ctx)
	if err != nil {
		return s.degradedSnapshot(err)
	}

	return models.AggregateStatistics{
		Total:        site.TotalParticipants,
		Estudiantes:  site.Estudiantes,
		Maestros:     site.Maestros,
		Padres:       site.Padres,
		Otros:        site.Otros,
		Today:        today.Registrations,
		ThisWeek:     week,
		Distribution: distribution,
		LastUpdated:  site.LastUpdated,
	}
}

// degradedSnapshot is the all-zero default substituted on any sub-failure, so
// statistics never block the operation they accompany. Degraded lets callers
// tell "no data yet" from "read failed".
func (s *statsService) degradedSnapshot(err error) models.AggregateStatistics {
	s.logger.Warn("statistics snapshot degraded", "error", err)
	return models.AggregateStatistics{
		Distribution: zeroDistribution(),
		Degraded:     true,
	}
}

func (s *statsService) Complete(ctx context.Context) models.CompleteStatistics {
	out := models.CompleteStatistics{ServerTime: s.now()}

	visitors := s.Visitors(ctx)
	out.Visitantes = visitors.Total
	out.VisitantesHoy = visitors.Today
	out.VisitantesSemana = visitors.ThisWeek
	out.Degraded = out.Degraded || visitors.Degraded

	if site, err := s.repo.Stats().GetSiteStats(ctx); err != nil {
		s.logger.Warn("site statistics read failed", "error", err)
		out.Degraded = true
	} else {
		out.Estudiantes = site.Estudiantes
		out.Maestros = site.Maestros
		out.Padres = site.Padres
		out.Otros = site.Otros
		out.LastUpdated = site.LastUpdated
	}

	if total, err := s.repo.Participant().Count(ctx); err != nil {
		s.logger.Warn("participant count failed", "error", err)
		out.Degraded = true
	} else {
		out.ParticipantesOlimpiadas = total
	}

	if today, err := s.repo.Stats().GetDaily(ctx, repositories.DateKey(s.now())); err != nil {
		s.logger.Warn("daily statistics read failed", "error", err)
		out.Degraded = true
	} else {
		out.RegistrosHoy = today.Registrations
	}

	for _, role := range models.VoteRoles() {
		n, err := s.repo.Votes().Count(ctx, role)
		if err != nil {
			s.logger.Warn("vote count read failed", "role", role, "error", err)
			out.RoleVotes.Degraded = true
			out.Degraded = true
			continue
		}
		setRoleCount(&out.RoleVotes, role, n)
	}

	return out
}

func (s *statsService) IncrementVisitors(ctx context.Context) error {
	return s.repo.Visitors().Increment(ctx, repositories.DateKey(s.now()))
}

func (s *statsService) Visitors(ctx context.Context) models.VisitorStatistics {
	out := models.VisitorStatistics{}

	if total, err := s.repo.Visitors().Total(ctx); err != nil {
		s.logger.Warn("visitor total read failed", "error", err)
		out.Degraded = true
	} else {
		out.Total = total
	}

	for i := 0; i < 7; i++ {
		date := repositories.DateKey(s.now().AddDate(0, 0, -i))
		day, err := s.repo.Visitors().Daily(ctx, date)
		if err != nil {
			s.logger.Warn("visitor daily read failed", "date", date, "error", err)
			out.Degraded = true
			continue
		}
		if i == 0 {
			out.Today = day
		}
		out.ThisWeek += day
	}
	return out
}

func zeroDistribution() map[models.Category]int {
	distribution := make(map[models.Category]int, len(models.Categories()))
	for _, c := range models.Categories() {
		distribution[c] = 0
	}
	return distribution
}
