package pool

import (
	"golang.org/x/time/rate"
)

// Option is a functional option for configuring a ThreadPool.
type Option func(*poolConfig)

type threadBinding int

const (
	bindNone threadBinding = iota
	bindLocked
	bindPinned
)

type poolConfig struct {
	rateLimiter *rate.Limiter
	binding     threadBinding
	queueSize   int

	onTaskStart func(workerID int, taskID int64)
	onTaskEnd   func(workerID int, taskID int64, err error)
}

func newConfig(opts ...Option) *poolConfig {
	cfg := &poolConfig{
		queueSize: 64,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRateLimit throttles task execution with a token bucket shared by every
// worker and assisting caller. A worker waits for a token after dequeuing a
// task and before invoking it, without holding any pool lock.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *poolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithLockedThreads runs each worker on a dedicated OS thread for its whole
// lifetime (runtime.LockOSThread).
func WithLockedThreads() Option {
	return func(cfg *poolConfig) {
		if cfg.binding < bindLocked {
			cfg.binding = bindLocked
		}
	}
}

// WithCPUAffinity locks each worker to a dedicated OS thread and pins that
// thread to core workerID modulo the CPU count. Pinning failures are not
// fatal; the worker keeps running on its locked thread.
func WithCPUAffinity() Option {
	return func(cfg *poolConfig) {
		cfg.binding = bindPinned
	}
}

// WithInitialQueueSize pre-sizes the work queue. The queue still grows
// without bound; this only avoids early reallocations.
func WithInitialQueueSize(size int) Option {
	return func(cfg *poolConfig) {
		if size > 0 {
			cfg.queueSize = size
		}
	}
}

// WithOnTaskStart registers a hook called by the executing goroutine right
// before a task body runs. It must be safe for concurrent use.
func WithOnTaskStart(fn func(workerID int, taskID int64)) Option {
	return func(cfg *poolConfig) {
		cfg.onTaskStart = fn
	}
}

// WithOnTaskEnd registers a hook called by the executing goroutine right
// after a task body returns, with the error it produced (recovered panics
// included). It runs before the task counts as finished, so WaitCompletion
// observes every hook call. It must be safe for concurrent use.
func WithOnTaskEnd(fn func(workerID int, taskID int64, err error)) Option {
	return func(cfg *poolConfig) {
		cfg.onTaskEnd = fn
	}
}
