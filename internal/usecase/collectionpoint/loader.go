package collectionpoint

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/infra/cache"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

// Loader reads collection points through the cache. Cache failures are
// logged and the repository is used directly.
type Loader struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewLoader(repo domain.Repository, c cache.Cache, ttl time.Duration, log *zap.Logger) *Loader {
	return &Loader{repo: repo, cache: c, ttl: ttl, log: log}
}

func cacheKey(id uint) string {
	return fmt.Sprintf("collection_point:%d", id)
}

func (l *Loader) Get(ctx context.Context, id uint) (*models.CollectionPoint, error) {
	var p models.CollectionPoint
	found, err := l.cache.Get(ctx, cacheKey(id), &p)
	if err != nil {
		l.log.Warn("collection point cache read failed", zap.Uint("id", id), zap.Error(err))
	}
	if found {
		return &p, nil
	}

	point, err := l.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Set(ctx, cacheKey(id), point, l.ttl); err != nil {
		l.log.Warn("collection point cache write failed", zap.Uint("id", id), zap.Error(err))
	}
	return point, nil
}

func (l *Loader) Invalidate(ctx context.Context, id uint) {
	if err := l.cache.Delete(ctx, cacheKey(id)); err != nil {
		l.log.Warn("collection point cache invalidation failed", zap.Uint("id", id), zap.Error(err))
	}
}
