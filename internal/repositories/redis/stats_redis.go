package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/clubstem/registration-service/internal/kvstore"
	"github.com/clubstem/registration-service/internal/models"
	"github.com/clubstem/registration-service/internal/repositories"
)

type statsRepository struct {
	store *kvstore.Manager
}

func (r *statsRepository) GetSiteStats(ctx context.Context) (models.SiteStatistics, error) {
	var data string
	err := r.store.Do(ctx, "stats.get_site", func(c *goredis.Client) error {
		res, err := c.Get(ctx, keySiteStats).Result()
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
		return models.SiteStatistics{}, err
	}
	return kvstore.DecodeSiteStats(data)
}

func (r *statsRepository) SetSiteStats(ctx context.Context, stats models.SiteStatistics) error {
	data, err := kvstore.Encode(stats)
	if err != nil {
		return err
	}
	return r.store.Do(ctx, "stats.set_site", func(c *goredis.Client) error {
		return c.Set(ctx, keySiteStats, data, 0).Err()
	})
}

func (r *statsRepository) GetDaily(ctx context.Context, date string) (models.DailyStats, error) {
	var data string
	err := r.store.Do(ctx, "stats.get_daily", func(c *goredis.Client) error {
		res, err := c.Get(ctx, keyDailyStats(date)).Result()
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
		return models.DailyStats{}, err
	}
	return kvstore.DecodeDailyStats(data)
}

func (r *statsRepository) SetDaily(ctx context.Context, date string, stats models.DailyStats) error {
	data, err := kvstore.Encode(stats)
	if err != nil {
		return err
	}
	// Set plus expiry refresh; the TTL restarts at 30 days on every write.
	return r.store.Do(ctx, "stats.set_daily", func(c *goredis.Client) error {
		_, err := c.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, keyDailyStats(date), data, 0)
			pipe.Expire(ctx, keyDailyStats(date), repositories.DailyStatsTTL)
			return nil
		})
		return err
	})
}
