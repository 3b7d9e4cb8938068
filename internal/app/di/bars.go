// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	candleadapters "stock_dashboard/internal/feature/candles/adapters"
	"stock_dashboard/internal/feature/candles/usecase"
	"stock_dashboard/internal/platform/cache"
)

// CacheConfig controls the Redis decorator around the bar repository.
type CacheConfig struct {
	Namespace   string
	RefreshHour int
	Location    *time.Location
}

// NewBarRepository creates a BarRepository implementation.
// If Redis is available, the SQLite repository is wrapped with a cache whose
// entries expire at the next snapshot refresh. Otherwise the SQLite
// repository is returned as is.
func NewBarRepository(ctx context.Context, db *gorm.DB, rdb *redis.Client, cfg CacheConfig) usecase.BarRepository {
	repo := candleadapters.NewBarRepository(db)
	if rdb == nil {
		return repo
	}

	cached := cache.NewCachingBarRepository(rdb, 0, repo, cfg.Namespace).
		ExpireAtDailyRefresh(cfg.RefreshHour, cfg.Location)
	// 起動時に前回スナップショットのキャッシュを破棄
	if err := cached.Purge(ctx); err != nil {
		slog.WarnContext(ctx, "failed to purge bar cache", "error", err)
	}
	return cached
}
