package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExpiredPurger удаляет просроченные записи кеша
type ExpiredPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// CachePurger периодически удаляет просроченные строки табличного кеша.
// Redis удаляет ключи сам, для него purger не нужен.
type CachePurger struct {
	*BaseWorker
	store ExpiredPurger
}

// NewCachePurger создает purger с проходом раз в interval
func NewCachePurger(store ExpiredPurger, interval time.Duration, logger *zap.Logger) *CachePurger {
	return &CachePurger{
		BaseWorker: NewBaseWorker("cache-purger", interval, logger),
		store:      store,
	}
}

// Start чистит кеш до остановки
func (p *CachePurger) Start(ctx context.Context) error {
	return p.RunEvery(ctx, func(ctx context.Context) {
		p.Purge(ctx)
	})
}

// Purge выполняет один проход. Ошибки логируются, повтор на следующем тике.
func (p *CachePurger) Purge(ctx context.Context) int64 {
	n, err := p.store.PurgeExpired(ctx)
	if err != nil {
		p.Logger().Warn("Failed to purge expired cache entries", zap.Error(err))
		return 0
	}
	if n > 0 {
		p.Logger().Debug("Purged expired cache entries", zap.Int64("count", n))
	}
	return n
}
