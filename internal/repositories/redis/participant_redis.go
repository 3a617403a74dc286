package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/clubstem/registration-service/internal/kvstore"
	"github.com/clubstem/registration-service/internal/models"
)

type participantRepository struct {
	store *kvstore.Manager
}

func (r *participantRepository) Create(ctx context.Context, p *models.Participant) error {
	data, err := kvstore.Encode(p)
	if err != nil {
		return err
	}

	// One pipeline, one round trip. The store still applies the commands
	// independently: this is not a transaction, and readers must tolerate an
	// indexed id whose by-id record never landed.
	return r.store.Do(ctx, "participant.create", func(c *goredis.Client) error {
		_, err := c.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, keyParticipantByEmail(p.Email), data, 0)
			pipe.LPush(ctx, keyParticipantsList, p.ID)
			pipe.Set(ctx, keyParticipantByID(p.ID), data, 0)
			return nil
		})
		return err
	})
}

func (r *participantRepository) GetByEmail(ctx context.Context, email string) (*models.Participant, error) {
	return r.get(ctx, "participant.get_by_email", keyParticipantByEmail(email))
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*models.Participant, error) {
	return r.get(ctx, "participant.get_by_id", keyParticipantByID(id))
}

func (r *participantRepository) get(ctx context.Context, op, key string) (*models.Participant, error) {
	var data string
	err := r.store.Do(ctx, op, func(c *goredis.Client) error {
		res, err := c.Get(ctx, key).Result()
		if err == goredis.Nil {
			return nil
		}
		if err != nil {
			return err
		}
		data = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return kvstore.DecodeParticipant(data)
}

func (r *participantRepository) ListIDs(ctx context.Context, start, stop int64) ([]string, error) {
	var ids []string
	err := r.store.Do(ctx, "participant.list_ids", func(c *goredis.Client) error {
		res, err := c.LRange(ctx, keyParticipantsList, start, stop).Result()
		if err != nil {
			return err
		}
		ids = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *participantRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.store.Do(ctx, "participant.count", func(c *goredis.Client) error {
		res, err := c.LLen(ctx, keyParticipantsList).Result()
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
