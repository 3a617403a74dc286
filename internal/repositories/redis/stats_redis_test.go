package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubstem/registration-service/internal/models"
	"github.com/clubstem/registration-service/internal/repositories"
)

func TestSiteStatsRoundTripAndZeroDefault(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	// Never written: the zero record, not an error.
	stats, err := repo.Stats().GetSiteStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalParticipants)

	stats.TotalParticipants = 7
	stats.Estudiantes = 5
	stats.LastUpdated = testDate()
	require.NoError(t, repo.Stats().SetSiteStats(ctx, stats))

	got, err := repo.Stats().GetSiteStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, got.TotalParticipants)
	assert.Equal(t, 5, got.Estudiantes)
	assert.True(t, got.LastUpdated.Equal(testDate()))
}

func TestDailyStatsExpiryIsRefreshedOnWrite(t *testing.T) {
	repo, s := newTestRepository(t)
	ctx := context.Background()
	date := repositories.DateKey(testDate())

	require.NoError(t, repo.Stats().SetDaily(ctx, date, models.DailyStats{Registrations: 1}))
	assert.Equal(t, repositories.DailyStatsTTL, s.TTL("stats:daily:"+date))

	// Let some of the TTL elapse, then write again: the expiry restarts at
	// the full 30 days instead of accumulating.
	s.FastForward(10 * 24 * time.Hour)
	assert.Equal(t, repositories.DailyStatsTTL-10*24*time.Hour, s.TTL("stats:daily:"+date))

	require.NoError(t, repo.Stats().SetDaily(ctx, date, models.DailyStats{Registrations: 2}))
	assert.Equal(t, repositories.DailyStatsTTL, s.TTL("stats:daily:"+date))

	got, err := repo.Stats().GetDaily(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Registrations)
}

func TestDailyStatsMissingDayIsZero(t *testing.T) {
	repo, _ := newTestRepository(t)

	got, err := repo.Stats().GetDaily(context.Background(), "2026-01-01")
	require.NoError(t, err)
	assert.Zero(t, got.Registrations)
}

func TestVisitorCounters(t *testing.T) {
	repo, s := newTestRepository(t)
	ctx := context.Background()
	date := repositories.DateKey(testDate())

	total, err := repo.Visitors().Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Visitors().Increment(ctx, date))
	}

	total, err = repo.Visitors().Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	daily, err := repo.Visitors().Daily(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, int64(3), daily)

	assert.Equal(t, repositories.DailyStatsTTL, s.TTL("visitors:daily:"+date))

	other, err := repo.Visitors().Daily(ctx, "2026-01-01")
	require.NoError(t, err)
	assert.Zero(t, other)
}
