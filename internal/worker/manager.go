package worker

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// defaultShutdownTimeout - используется, когда таймаут не задан в конфигурации
const defaultShutdownTimeout = 30 * time.Second

// WorkerManager запускает фоновые воркеры и останавливает их вместе
type WorkerManager struct {
	workers         []Worker
	running         map[string]struct{}
	logger          *zap.Logger
	shutdownTimeout time.Duration
	wg              sync.WaitGroup
	mu              sync.Mutex
}

// NewWorkerManager создает WorkerManager. shutdownTimeout ограничивает ожидание в Stop
func NewWorkerManager(logger *zap.Logger, shutdownTimeout time.Duration) *WorkerManager {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WorkerManager{
		workers:         make([]Worker, 0),
		running:         make(map[string]struct{}),
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Register добавляет воркер; вызывать до Start
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает каждый воркер в отдельной горутине
func (m *WorkerManager) Start(ctx context.Context) error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	for _, w := range workers {
		m.running[w.Name()] = struct{}{}
	}
	m.mu.Unlock()

	if len(workers) == 0 {
		m.logger.Info("No workers registered")
		return nil
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, worker := range workers {
		m.wg.Add(1)
		go m.run(ctx, worker)
	}

	return nil
}

func (m *WorkerManager) run(ctx context.Context, w Worker) {
	defer m.wg.Done()
	defer func() {
		m.mu.Lock()
		delete(m.running, w.Name())
		m.mu.Unlock()
	}()

	m.logger.Info("Starting worker", zap.String("name", w.Name()))
	if err := w.Start(ctx); err != nil {
		m.logger.Error("Worker failed",
			zap.String("name", w.Name()),
			zap.Error(err))
	}
}

// Running возвращает имена воркеров, которые еще не завершились
func (m *WorkerManager) Running() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.running))
	for name := range m.running {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stop сигнализирует всем воркерам и ждет их завершения, пока не истечет
// shutdownTimeout или ctx
func (m *WorkerManager) Stop(ctx context.Context) error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, worker := range workers {
		if err := worker.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", worker.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(m.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-timer.C:
	case <-ctx.Done():
	}

	pending := m.Running()
	m.logger.Warn("Workers shutdown timed out",
		zap.Duration("timeout", m.shutdownTimeout),
		zap.Strings("pending", pending))
	return fmt.Errorf("workers shutdown timed out, still running: %v", pending)
}
