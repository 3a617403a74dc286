package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubstem/registration-service/internal/models"
	"github.com/clubstem/registration-service/internal/repositories"
)

func TestRecordRegistrationCounters(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statsService()
	ctx := context.Background()

	require.NoError(t, svc.RecordRegistration(ctx, models.RoleEstudiante))
	require.NoError(t, svc.RecordRegistration(ctx, models.RoleEstudiante))
	require.NoError(t, svc.RecordRegistration(ctx, models.RoleMaestro))
	// Unmatched roles bump the total only.
	require.NoError(t, svc.RecordRegistration(ctx, models.ParticipantRole("alien")))

	stats, err := env.repo.Stats().GetSiteStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalParticipants)
	assert.Equal(t, 2, stats.Estudiantes)
	assert.Equal(t, 1, stats.Maestros)
	assert.Zero(t, stats.Padres)
	assert.True(t, stats.LastUpdated.Equal(env.now))

	daily, err := env.repo.Stats().GetDaily(ctx, repositories.DateKey(env.now))
	require.NoError(t, err)
	assert.Equal(t, 4, daily.Registrations)
}

func TestWeeklySumsSevenDaysWithGaps(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statsService()
	ctx := context.Background()

	// Today first: [3,0,5,2,0,0,1]. The zero days are simply never written.
	counts := []int{3, 0, 5, 2, 0, 0, 1}
	for i, n := range counts {
		if n == 0 {
			continue
		}
		date := repositories.DateKey(env.now.AddDate(0, 0, -i))
		require.NoError(t, env.repo.Stats().SetDaily(ctx, date, models.DailyStats{Registrations: n}))
	}

	// A record older than the window must not count.
	old := repositories.DateKey(env.now.AddDate(0, 0, -7))
	require.NoError(t, env.repo.Stats().SetDaily(ctx, old, models.DailyStats{Registrations: 100}))

	week, err := svc.Weekly(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, week)
}

func TestCategoryDistributionSkipsUnknownCategories(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statsService()
	ctx := context.Background()

	mk := func(id, category string) {
		p := &models.Participant{
			ID:       id,
			FullName: "X",
			Email:    id + "@example.com",
			Category: category,
			Status:   models.StatusActive,
		}
		require.NoError(t, env.repo.Participant().Create(ctx, p))
	}
	mk("participant_1_a", "avanzado")
	mk("participant_2_a", "avanzado")
	mk("participant_3_a", "principiante")
	mk("participant_4_a", "mystery")
	mk("participant_5_a", "")

	dist, err := svc.CategoryDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dist[models.CategoryAvanzado])
	assert.Equal(t, 1, dist[models.CategoryPrincipiante])
	assert.Equal(t, 0, dist[models.CategoryIntermedio])
	assert.Len(t, dist, len(models.Categories()))
}

func TestSnapshotComposesFigures(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statsService()
	ctx := context.Background()

	require.NoError(t, svc.RecordRegistration(ctx, models.RoleEstudiante))
	yesterday := repositories.DateKey(env.now.AddDate(0, 0, -1))
	require.NoError(t, env.repo.Stats().SetDaily(ctx, yesterday, models.DailyStats{Registrations: 4}))

	snap := svc.Snapshot(ctx)
	assert.False(t, snap.Degraded)
	assert.Equal(t, 1, snap.Total)
	assert.Equal(t, 1, snap.Today)
	assert.Equal(t, 5, snap.ThisWeek)
	assert.NotNil(t, snap.Distribution)
}

func TestSnapshotDegradesToZeroDefaults(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statsService()

	env.store.SetError("store down")

	snap := svc.Snapshot(context.Background())
	assert.True(t, snap.Degraded, "a failed read must be distinguishable from a real zero")
	assert.Zero(t, snap.Total)
	assert.Zero(t, snap.ThisWeek)
	assert.Len(t, snap.Distribution, len(models.Categories()))
}

func TestVisitorsAndComplete(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statsService()
	ctx := context.Background()

	require.NoError(t, svc.IncrementVisitors(ctx))
	require.NoError(t, svc.IncrementVisitors(ctx))
	yesterday := repositories.DateKey(env.now.AddDate(0, 0, -1))
	require.NoError(t, env.repo.Visitors().Increment(ctx, yesterday))

	visitors := svc.Visitors(ctx)
	assert.Equal(t, int64(3), visitors.Total)
	assert.Equal(t, int64(2), visitors.Today)
	assert.Equal(t, int64(3), visitors.ThisWeek)
	assert.False(t, visitors.Degraded)

	require.NoError(t, svc.RecordRegistration(ctx, models.RoleMaestro))
	require.NoError(t, env.repo.Votes().AddVote(ctx, "u1", "padres"))

	complete := svc.Complete(ctx)
	assert.Equal(t, int64(3), complete.Visitantes)
	assert.Equal(t, 1, complete.Maestros)
	assert.Equal(t, 1, complete.RegistrosHoy)
	assert.Equal(t, int64(1), complete.RoleVotes.Padres)
	assert.False(t, complete.Degraded)
	assert.True(t, complete.ServerTime.Equal(env.now))
}

func TestCompleteDegradesPerSection(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statsService()

	env.store.SetError("store down")

	complete := svc.Complete(context.Background())
	assert.True(t, complete.Degraded)
	assert.Zero(t, complete.Visitantes)
	assert.Zero(t, complete.ParticipantesOlimpiadas)
}
