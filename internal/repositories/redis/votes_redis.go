package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/clubstem/registration-service/internal/kvstore"
	"github.com/clubstem/registration-service/internal/models"
)

type voteRepository struct {
	store *kvstore.Manager
}

func (r *voteRepository) Count(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.store.Do(ctx, "votes.count", func(c *goredis.Client) error {
		res, err := c.SCard(ctx, keyRoleSet(role)).Result()
		if err != nil {
			return err
		}
		n = res
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *voteRepository) HasVoted(ctx context.Context, voterID string) (bool, error) {
	var voted bool
	err := r.store.Do(ctx, "votes.has_voted", func(c *goredis.Client) error {
		res, err := c.SIsMember(ctx, keyVotedSet, voterID).Result()
		if err != nil {
			return err
		}
		voted = res
		return nil
	})
	if err != nil {
		return false, err
	}
	return voted, nil
}

func (r *voteRepository) AddVote(ctx context.Context, voterID, role string) error {
	// Two set adds, each atomic on its own key. A failure between them can
	// leave a voter in the global set without a role membership.
	return r.store.Do(ctx, "votes.add", func(c *goredis.Client) error {
		if err := c.SAdd(ctx, keyVotedSet, voterID).Err(); err != nil {
			return err
		}
		return c.SAdd(ctx, keyRoleSet(role), voterID).Err()
	})
}

func (r *voteRepository) Reset(ctx context.Context) error {
	keys := []string{keyVotedSet}
	for _, role := range models.VoteRoles() {
		keys = append(keys, keyRoleSet(role))
	}

	// Best-effort per key: a failed delete does not stop the rest.
	var firstErr error
	for _, key := range keys {
		err := r.store.Do(ctx, "votes.reset", func(c *goredis.Client) error {
			return c.Del(ctx, key).Err()
		})
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
