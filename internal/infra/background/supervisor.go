package background

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	defaultTaskTimeout = 5 * time.Second
	defaultMaxPending  = 1024
)

// Task is a unit of background work. It must honour ctx cancellation.
type Task func(ctx context.Context) error

// Supervisor runs detached tasks that must outlive the request that started them.
// Every task is bounded in time by a timeout and in count by a semaphore; failures
// are logged and never propagated to the caller.
type Supervisor struct {
	logger  *zap.Logger
	timeout time.Duration
	sem     *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// Options configures a Supervisor. Zero values fall back to defaults.
type Options struct {
	TaskTimeout time.Duration
	MaxPending  int64
}

// NewSupervisor creates a supervisor whose tasks derive from a fresh background context.
func NewSupervisor(logger *zap.Logger, opts Options) *Supervisor {
	if opts.TaskTimeout <= 0 {
		opts.TaskTimeout = defaultTaskTimeout
	}
	if opts.MaxPending <= 0 {
		opts.MaxPending = defaultMaxPending
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Supervisor{
		logger:  logger,
		timeout: opts.TaskTimeout,
		sem:     semaphore.NewWeighted(opts.MaxPending),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Go schedules task and returns immediately. It reports false when the task was
// dropped because the supervisor is full or shutting down.
func (s *Supervisor) Go(name string, task Task) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.logger.Warn("background task dropped: shutting down", zap.String("task", name))
		return false
	}
	if !s.sem.TryAcquire(1) {
		s.logger.Warn("background task dropped: too many pending", zap.String("task", name))
		return false
	}

	s.wg.Add(1)
	go s.run(name, task)
	return true
}

func (s *Supervisor) run(name string, task Task) {
	defer s.wg.Done()
	defer s.sem.Release(1)

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("background task panicked",
				zap.String("task", name),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
	}()

	start := time.Now()
	if err := task(ctx); err != nil {
		s.logger.Warn("background task failed",
			zap.String("task", name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("background task finished",
		zap.String("task", name),
		zap.Duration("duration", time.Since(start)),
	)
}

// Wait blocks until every scheduled task has returned.
func (s *Supervisor) Wait() {
	s.wg.Wait()
}

// Shutdown stops accepting tasks and waits for in-flight ones until ctx is done,
// after which the remaining tasks are cancelled.
func (s *Supervisor) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancel()
		s.logger.Info("background supervisor stopped")
		return nil
	case <-ctx.Done():
		s.cancel()
		s.logger.Warn("background supervisor stopped with tasks still running", zap.Error(ctx.Err()))
		return ctx.Err()
	}
}
