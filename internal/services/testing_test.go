package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/clubstem/registration-service/internal/events"
	"github.com/clubstem/registration-service/internal/kvstore"
	"github.com/clubstem/registration-service/internal/repositories"
	redisrepo "github.com/clubstem/registration-service/internal/repositories/redis"
	"github.com/clubstem/registration-service/internal/validator"
)

type testEnv struct {
	repo      repositories.Repository
	store     *miniredis.Miniredis
	publisher *events.MockPublisher
	logger    *slog.Logger
	now       time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager, err := kvstore.NewManager("redis://"+s.Addr(), logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	return &testEnv{
		repo:      redisrepo.NewRepository(manager),
		store:     s,
		publisher: events.NewMockPublisher(),
		logger:    logger,
		now:       time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
	}
}

func (e *testEnv) statsService() *statsService {
	return &statsService{
		repo:   e.repo,
		logger: e.logger,
		now:    func() time.Time { return e.now },
	}
}

func (e *testEnv) participantService() *participantService {
	return &participantService{
		repo:      e.repo,
		stats:     e.statsService(),
		logger:    e.logger,
		validator: validator.New(),
		publisher: e.publisher,
		now:       func() time.Time { return e.now },
	}
}

func (e *testEnv) voteService() *voteService {
	return &voteService{
		repo:      e.repo,
		logger:    e.logger,
		publisher: e.publisher,
		now:       func() time.Time { return e.now },
	}
}

func validRegistration() *RegisterRequest {
	return &RegisterRequest{
		FullName: "Ana María López",
		Email:    "ana@example.com",
		Age:      14,
		Grade:    "2do",
		Category: "avanzado",
	}
}
