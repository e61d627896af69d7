package pool

import "github.com/utkarsh5026/threadpool/internal/types"

// Submit queues fn for execution and returns the Future that will hold its
// value or error. It never blocks beyond a brief queue lock and never applies
// backpressure.
//
// If a shutdown is in progress the task is dropped and the returned Future
// never resolves; waiting on it with Get blocks forever. This keeps the
// historical contract of the pool. Prefer TrySubmit when a shutdown may race
// with submission.
func Submit[R any](p *ThreadPool, fn TaskFunc[R]) *Future[R] {
	future, _ := submit(p, fn)
	return future
}

// TrySubmit is like Submit but reports ErrPoolShuttingDown instead of
// handing out a Future that would never resolve.
func TrySubmit[R any](p *ThreadPool, fn TaskFunc[R]) (*Future[R], error) {
	future, ok := submit(p, fn)
	if !ok {
		return nil, ErrPoolShuttingDown
	}
	return future, nil
}

// Run submits fn and blocks until it has run, returning its value and error.
// Like Submit, it blocks forever if the pool is shutting down.
func Run[R any](p *ThreadPool, fn TaskFunc[R]) (R, error) {
	return Submit(p, fn).Get()
}

// Go submits a task that produces no value.
func (p *ThreadPool) Go(fn func(workerID int) error) *Future[struct{}] {
	return Submit(p, func(workerID int) (struct{}, error) {
		return struct{}{}, fn(workerID)
	})
}

func submit[R any](p *ThreadPool, fn TaskFunc[R]) (*Future[R], bool) {
	id := p.taskIDs.Add(1)
	future := types.NewFuture[R](id)

	t := &task{
		id: id,
		run: func(workerID int) error {
			normalReturn := false
			defer func() {
				if !normalReturn {
					var zero R
					future.Resolve(zero, ErrTaskExited)
				}
			}()

			value, err := invokeWithRecovery(fn, workerID)
			future.Resolve(value, err)
			normalReturn = true
			return err
		},
	}

	return future, p.enqueue(t)
}
