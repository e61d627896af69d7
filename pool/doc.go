// Package pool provides a thread pool: a fixed but growable set of
// long-lived workers draining one shared FIFO task queue, plus a helper that
// partitions an index range into batches and runs them through the pool.
//
// The primary type is ThreadPool. Tasks are closures that receive the id of
// the worker executing them and return a value and an error; submission
// returns a Future holding that outcome.
//
// # Basic Usage
//
//	p := pool.New(4)
//	defer p.Close()
//
//	future := pool.Submit(p, func(workerID int) (string, error) {
//	    return fmt.Sprintf("ran on worker %d", workerID), nil
//	})
//	msg, err := future.Get()
//
//	// or submit and wait in one call
//	n, err := pool.Run(p, func(workerID int) (int, error) {
//	    return 42, nil
//	})
//
// # Barriers and Assisting
//
// WaitCompletion blocks until the queue is empty and no task is running.
// Assist lets the calling goroutine help drain the queue before waiting,
// which also makes a pool with zero workers usable:
//
//	p := pool.New(0)
//	for i := range 5 {
//	    p.Go(func(workerID int) error { return work(i) })
//	}
//	p.Assist()
//	p.WaitCompletion()
//
// # Partitioning
//
// SplitFor cuts [0, count) into batches and runs one task per batch:
//
//	// 4 batches of at least 64 indices each
//	err := pool.SplitFor(p, len(items), 1, 4, 64, func(workerID, i int) {
//	    items[i] = transform(items[i])
//	})
//
// # Lifecycle
//
// Grow adds workers at any time. Shutdown (or Close) is graceful: workers
// finish everything already queued before exiting, and the pool can be grown
// again afterwards. Submissions made while Shutdown runs are dropped; Submit
// returns a Future that never resolves, TrySubmit returns
// ErrPoolShuttingDown.
//
// # Configuration Options
//
//   - WithRateLimit(tasksPerSecond, burst): throttle task execution
//   - WithLockedThreads(): run each worker on a dedicated OS thread
//   - WithCPUAffinity(): additionally pin each worker thread to a core
//   - WithInitialQueueSize(n): pre-size the work queue
//   - WithOnTaskStart / WithOnTaskEnd: per-task hooks
//
// # Error Handling
//
// Errors returned by a task, and panics raised inside it, are captured in the
// task's Future and surface only when the Future is observed. A panic becomes
// an error wrapping ErrTaskPanic with a stack trace. A task that calls
// runtime.Goexit resolves with ErrTaskExited and its worker is replaced. A
// failing task never reduces the worker count.
//
// Build with -tags debug to log worker lifecycle and shutdown events to
// stderr.
package pool
