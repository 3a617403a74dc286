package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/clubstem/registration-service/internal/kvstore"
	"github.com/clubstem/registration-service/internal/repositories"
)

func newTestRepository(t *testing.T) (repositories.Repository, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := kvstore.NewManager("redis://"+s.Addr(), logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewRepository(store), s
}

func TestRepositoryPing(t *testing.T) {
	repo, s := newTestRepository(t)
	require.NoError(t, repo.Ping(context.Background()))

	s.Close()
	require.Error(t, repo.Ping(context.Background()))
}

func testDate() time.Time {
	return time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
}
