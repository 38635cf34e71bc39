package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"campushire/internal/domain/actor"
	"campushire/internal/domain/application"
	"campushire/internal/domain/stats"
	"campushire/internal/repository"
)

const (
	statsCacheTTL = 5 * time.Minute
	statsLockTTL  = 30 * time.Second
	defaultPeriod = 30 * 24 * time.Hour
)

// StatsCache is the subset of the redis wrapper the dashboard needs.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

type StatsUsecase interface {
	Summary(ctx context.Context, by actor.Actor, period time.Duration) (stats.Summary, error)
}

type Stats struct {
	applications repository.ApplicationRepository
	cache        StatsCache
	logger       *log.Logger
	now          func() time.Time
}

func NewStatsUsecase(applications repository.ApplicationRepository, cache StatsCache, logger *log.Logger) *Stats {
	return &Stats{applications: applications, cache: cache, logger: logger, now: time.Now}
}

// Summary aggregates the actor's applications. The collection comes
// from the same repository the list screens read, so dashboard counts
// and list counts cannot drift. Rebuilds go through a redis SETNX lock
// so a popular dashboard does not stampede Postgres.
func (u *Stats) Summary(ctx context.Context, by actor.Actor, period time.Duration) (stats.Summary, error) {
	if period <= 0 {
		period = defaultPeriod
	}

	cacheKey := fmt.Sprintf("stats:%s:%s:%d", by.Role, by.ID, int64(period.Seconds()))
	lockKey := "lock:" + cacheKey

	if u.cache != nil {
		var cached stats.Summary
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Stats] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", statsLockTTL)
		if err == nil && ok {
			lockAcquired = true
		}
	}

	var apps []application.Application
	var err error
	switch by.Role {
	case actor.RoleCompany:
		apps, err = u.applications.ListByCompany(ctx, by.ID)
	case actor.RoleStudent:
		apps, err = u.applications.ListByStudent(ctx, by.ID)
	default:
		return stats.Summary{}, ErrForbidden
	}
	if err != nil {
		return stats.Summary{}, ErrInternal
	}

	periodStart := u.now().UTC().Add(-period)
	sum, err := stats.BuildSummary(ctx, apps, periodStart, period)
	if err != nil {
		// cancellation only; partial output is discarded
		return stats.Summary{}, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, sum, statsCacheTTL)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return sum, nil
}
