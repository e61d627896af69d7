package pool

import "github.com/utkarsh5026/threadpool/internal/types"

// TaskFunc is the body of a task. It receives the identifier of the goroutine
// executing it: a worker id in [0, WorkerCount()) or, for tasks run through
// Assist, the borrowed id equal to the worker count at the time Assist began.
//
// Arguments are captured by the closure.
type TaskFunc[R any] func(workerID int) (R, error)

// Future is the one-shot result slot returned by Submit.
type Future[R any] = types.Future[R]

// Result is the outcome stored in a Future.
type Result[R any] = types.Result[R]

// task is the type-erased unit held by the queue. run executes the body,
// resolves the typed future and returns the body's error for hooks and stats.
type task struct {
	id  int64
	run func(workerID int) error
}
