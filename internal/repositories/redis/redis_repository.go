// Package redis implements the repository contracts on the external key-value
// store, all access flowing through the kvstore connection manager.
package redis

import (
	"context"

	"github.com/clubstem/registration-service/internal/kvstore"
	"github.com/clubstem/registration-service/internal/repositories"
)

type repositoryManager struct {
	store *kvstore.Manager

	participant *participantRepository
	stats       *statsRepository
	votes       *voteRepository
	visitors    *visitorRepository
}

// NewRepository builds the store-backed repository set on top of a shared
// connection manager.
func NewRepository(store *kvstore.Manager) repositories.Repository {
	return &repositoryManager{
		store:       store,
		participant: &participantRepository{store: store},
		stats:       &statsRepository{store: store},
		votes:       &voteRepository{store: store},
		visitors:    &visitorRepository{store: store},
	}
}

func (m *repositoryManager) Participant() repositories.ParticipantRepository {
	return m.participant
}

func (m *repositoryManager) Stats() repositories.StatsRepository {
	return m.stats
}

func (m *repositoryManager) Votes() repositories.VoteRepository {
	return m.votes
}

func (m *repositoryManager) Visitors() repositories.VisitorRepository {
	return m.visitors
}

func (m *repositoryManager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *repositoryManager) Close() error {
	return m.store.Close()
}
