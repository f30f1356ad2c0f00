package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/commute-map/internal/domain/repository"
)

// SessionJanitor удаляет сессии, простаивающие дольше idleTTL
type SessionJanitor struct {
	*BaseWorker
	sessions repository.SessionRepository
	idleTTL  time.Duration
	now      func() time.Time
}

// NewSessionJanitor создает janitor с проходом раз в interval
func NewSessionJanitor(sessions repository.SessionRepository, idleTTL, interval time.Duration, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		BaseWorker: NewBaseWorker("session-janitor", interval, logger),
		sessions:   sessions,
		idleTTL:    idleTTL,
		now:        time.Now,
	}
}

// Start чистит сессии до остановки
func (j *SessionJanitor) Start(ctx context.Context) error {
	return j.RunEvery(ctx, func(context.Context) {
		j.Sweep()
	})
}

// Sweep выполняет один проход и возвращает число удаленных сессий
func (j *SessionJanitor) Sweep() int {
	removed := j.sessions.Sweep(j.now().Add(-j.idleTTL))
	if removed > 0 {
		j.Logger().Info("Evicted idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", j.sessions.Count()))
	}
	return removed
}
