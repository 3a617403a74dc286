package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubstem/registration-service/internal/events"
)

func TestCastVoteCountsAndMarksVoter(t *testing.T) {
	env := newTestEnv(t)
	svc := env.voteService()
	ctx := context.Background()

	counts, err := svc.CastVote(ctx, "u1", "maestros")
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Maestros)
	assert.Zero(t, counts.Estudiantes)
	assert.True(t, counts.Voted)
	assert.False(t, counts.Degraded)

	published := env.publisher.PublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.TopicRoleVoteCast, published[0].Topic)
	vote, ok := published[0].Payload.(events.RoleVoteCast)
	require.True(t, ok)
	assert.Equal(t, "maestros", vote.Role)
	assert.True(t, vote.CastAt.Equal(env.now))
}

func TestCastVoteSecondAttemptRejected(t *testing.T) {
	env := newTestEnv(t)
	svc := env.voteService()
	ctx := context.Background()

	_, err := svc.CastVote(ctx, "u1", "maestros")
	require.NoError(t, err)

	// The second vote is rejected even for a different role, and the first
	// tally stands.
	_, err = svc.CastVote(ctx, "u1", "padres")
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	counts := svc.Counts(ctx, "u1")
	assert.Equal(t, int64(1), counts.Maestros)
	assert.Zero(t, counts.Padres)
	assert.True(t, counts.Voted)
}

func TestCastVoteValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.voteService()
	ctx := context.Background()

	_, err := svc.CastVote(ctx, "u1", "presidentes")
	assert.ErrorIs(t, err, ErrInvalidRole)

	// The singular registration role names are not valid vote roles.
	_, err = svc.CastVote(ctx, "u1", "maestro")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.CastVote(ctx, "", "maestros")
	assert.ErrorIs(t, err, ErrMissingVoter)
}

func TestCountsWithoutVoterSkipsMembership(t *testing.T) {
	env := newTestEnv(t)
	svc := env.voteService()
	ctx := context.Background()

	_, err := svc.CastVote(ctx, "u1", "estudiantes")
	require.NoError(t, err)
	_, err = svc.CastVote(ctx, "u2", "estudiantes")
	require.NoError(t, err)

	counts := svc.Counts(ctx, "")
	assert.Equal(t, int64(2), counts.Estudiantes)
	assert.False(t, counts.Voted)

	counts = svc.Counts(ctx, "u3")
	assert.False(t, counts.Voted)
}

func TestCountsDegradedOnStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	svc := env.voteService()

	env.store.SetError("store down")

	counts := svc.Counts(context.Background(), "u1")
	assert.True(t, counts.Degraded)
	assert.Zero(t, counts.Estudiantes)
	assert.False(t, counts.Voted)
}

func TestResetClearsLedger(t *testing.T) {
	env := newTestEnv(t)
	svc := env.voteService()
	ctx := context.Background()

	_, err := svc.CastVote(ctx, "u1", "otros")
	require.NoError(t, err)

	svc.Reset(ctx)

	counts := svc.Counts(ctx, "u1")
	assert.Zero(t, counts.Otros)
	assert.False(t, counts.Voted)

	// The voter can vote again after a reset.
	counts, err = svc.CastVote(ctx, "u1", "padres")
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Padres)
}
