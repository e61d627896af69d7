package pool

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/threadpool/internal/queue"
)

// ThreadPool is a set of long-lived workers draining one shared FIFO queue.
//
// Two locks split the state. queueMu guards the queue, the join flag and the
// "work available" condition. doneMu guards the busy and pending counters and
// the "task completed" condition. When both are needed they are taken in that
// order, and neither is held while a task body runs.
type ThreadPool struct {
	conf *poolConfig

	// lifecycle serializes Grow and Shutdown.
	lifecycle sync.Mutex
	group     *errgroup.Group
	workers   atomic.Int64

	queueMu sync.Mutex
	wakeup  *sync.Cond
	queue   *queue.Ring[*task]
	joining bool

	doneMu   sync.Mutex
	taskDone *sync.Cond
	pending  int // queued, not yet dequeued
	busy     int // dequeued, not yet finished

	taskIDs   atomic.Int64
	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

// New creates a pool and starts workers goroutines. workers may be zero, in
// which case tasks only run through Assist or Shutdown.
//
// Example:
//
//	p := pool.New(runtime.GOMAXPROCS(0))
//	defer p.Close()
//
//	sum, err := pool.Run(p, func(workerID int) (int, error) {
//	    return 40 + 2, nil
//	})
func New(workers int, opts ...Option) *ThreadPool {
	cfg := newConfig(opts...)

	p := &ThreadPool{
		conf:  cfg,
		group: &errgroup.Group{},
		queue: queue.NewRing[*task](cfg.queueSize),
	}
	p.wakeup = sync.NewCond(&p.queueMu)
	p.taskDone = sync.NewCond(&p.doneMu)

	p.Grow(workers)
	return p
}

// Grow appends n workers to the live set. New workers get the next free
// identifiers. It is safe to call at any time, including while tasks run.
// Calls are serialized with Shutdown.
func (p *ThreadPool) Grow(n int) {
	if n <= 0 {
		return
	}

	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	base := int(p.workers.Load())
	for i := range n {
		id := base + i
		p.group.Go(func() error {
			return p.worker(id)
		})
	}
	p.workers.Store(int64(base + n))
}

// WorkerCount returns the number of live workers. It never blocks.
func (p *ThreadPool) WorkerCount() int {
	return int(p.workers.Load())
}

// Assist lets the calling goroutine execute queued tasks until it observes
// the queue empty, then returns. It does not wait for new work or for tasks
// running elsewhere. Tasks run here receive the worker count at the time of
// the call as their worker id.
//
// Assist returns no results; failures surface through each task's Future.
func (p *ThreadPool) Assist() {
	p.drain(p.WorkerCount())
}

// WaitCompletion blocks until the queue is empty and no task is running.
//
// It is a point-in-time barrier: every task submitted before the call has
// finished when it returns, while tasks submitted concurrently may or may not
// be included. Calling it from inside a task deadlocks, because the calling
// task itself counts as running.
func (p *ThreadPool) WaitCompletion() {
	p.doneMu.Lock()
	defer p.doneMu.Unlock()

	for p.pending > 0 || p.busy > 0 {
		p.taskDone.Wait()
	}
}

// Shutdown stops the pool gracefully. It raises the join flag, wakes every
// worker, and waits for all of them to exit. Workers keep dequeuing until the
// queue is empty, so nothing already queued is lost; whatever is still queued
// afterwards (a pool with no workers) is drained on the calling goroutine.
// Finally the worker set is cleared and the join flag lowered, so the pool
// can be reused with Grow.
//
// Submissions made while Shutdown runs are dropped: Submit returns a Future
// that never resolves and TrySubmit returns ErrPoolShuttingDown. A task that
// submits follow-up work and waits on it must not run across a shutdown.
func (p *ThreadPool) Shutdown() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.queueMu.Lock()
	p.joining = true
	p.wakeup.Broadcast()
	p.queueMu.Unlock()

	n := p.WorkerCount()
	debugLog("shutdown: joining %d workers", n)
	_ = p.group.Wait()

	p.drain(n)

	p.group = &errgroup.Group{}
	p.workers.Store(0)

	p.queueMu.Lock()
	p.joining = false
	p.queueMu.Unlock()
	debugLog("shutdown: complete")
}

// Close shuts the pool down. It always returns nil and exists so the pool can
// be used where an io.Closer is expected.
func (p *ThreadPool) Close() error {
	p.Shutdown()
	return nil
}
