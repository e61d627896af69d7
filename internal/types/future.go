package types

import (
	"context"
	"sync"
)

// Result is the outcome of a single task: the value it produced, or the error
// it returned (or panicked with), tagged with the task's submission id.
type Result[R any] struct {
	Value R
	Error error
	Key   int64
}

// Future is a one-shot result slot. Exactly one producer resolves it; any
// number of readers may wait on it, before or after resolution.
//
// A Future that is never resolved blocks Get forever. Use GetWithContext or
// TryGet when the producer may never run.
type Future[R any] struct {
	key    int64
	done   chan struct{}
	once   sync.Once
	result Result[R]
}

// NewFuture creates an unresolved future for the task identified by key.
func NewFuture[R any](key int64) *Future[R] {
	return &Future[R]{
		key:  key,
		done: make(chan struct{}),
	}
}

// Resolve stores the outcome and wakes every waiter.
// It reports false if the future had already been resolved; the earlier
// outcome is kept in that case.
func (f *Future[R]) Resolve(value R, err error) bool {
	resolved := false
	f.once.Do(func() {
		f.result = Result[R]{Value: value, Error: err, Key: f.key}
		close(f.done)
		resolved = true
	})
	return resolved
}

// Get blocks until the future is resolved and returns the task's value and error.
// Repeated calls return the same outcome.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	return f.result.Value, f.result.Error
}

// GetWithContext is like Get but gives up when ctx is done, returning the
// zero value and ctx.Err(). Giving up does not affect the task itself.
func (f *Future[R]) GetWithContext(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.result.Value, f.result.Error
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// TryGet returns the outcome without blocking. ready is false when the task
// has not finished yet.
func (f *Future[R]) TryGet() (value R, err error, ready bool) {
	select {
	case <-f.done:
		return f.result.Value, f.result.Error, true
	default:
		var zero R
		return zero, nil, false
	}
}

// Done returns a channel that is closed once the future is resolved.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// IsReady reports whether the future has been resolved.
func (f *Future[R]) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Key returns the submission id of the task backing this future.
func (f *Future[R]) Key() int64 {
	return f.key
}

// Result returns the full outcome, blocking until it is available.
func (f *Future[R]) Result() Result[R] {
	<-f.done
	return f.result
}
