package redis

import (
	"context"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/clubstem/registration-service/internal/kvstore"
	"github.com/clubstem/registration-service/internal/repositories"
)

type visitorRepository struct {
	store *kvstore.Manager
}

func (r *visitorRepository) Total(ctx context.Context) (int64, error) {
	return r.counter(ctx, "visitors.total", keyVisitorsTotal)
}

func (r *visitorRepository) Daily(ctx context.Context, date string) (int64, error) {
	return r.counter(ctx, "visitors.daily", keyVisitorsDaily(date))
}

func (r *visitorRepository) counter(ctx context.Context, op, key string) (int64, error) {
	var n int64
	err := r.store.Do(ctx, op, func(c *goredis.Client) error {
		res, err := c.Get(ctx, key).Result()
		if err == goredis.Nil {
			return nil
		}
		if err != nil {
			return err
		}
		parsed, err := strconv.ParseInt(res, 10, 64)
		if err != nil {
			return err
		}
		n = parsed
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *visitorRepository) Increment(ctx context.Context, date string) error {
	// Read-modify-write on both counters, matching the registration counters:
	// concurrent increments can lose updates, which the visit figures accept.
	total, err := r.Total(ctx)
	if err != nil {
		return err
	}
	daily, err := r.Daily(ctx, date)
	if err != nil {
		return err
	}

	return r.store.Do(ctx, "visitors.increment", func(c *goredis.Client) error {
		_, err := c.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, keyVisitorsTotal, strconv.FormatInt(total+1, 10), 0)
			pipe.Set(ctx, keyVisitorsDaily(date), strconv.FormatInt(daily+1, 10), 0)
			pipe.Expire(ctx, keyVisitorsDaily(date), repositories.DailyStatsTTL)
			return nil
		})
		return err
	})
}
