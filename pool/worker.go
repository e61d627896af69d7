package pool

import (
	"context"

	"github.com/utkarsh5026/threadpool/internal/cpu"
)

// worker is the loop run by every pool goroutine: wait for work or for the
// join flag, exit once joining with an empty queue, otherwise execute the
// head task.
func (p *ThreadPool) worker(id int) error {
	switch p.conf.binding {
	case bindLocked:
		defer cpu.LockThread()()
	case bindPinned:
		// never unlocked: the pinned thread dies with this goroutine instead
		// of returning to the scheduler with a one-core mask
		if err := cpu.PinWorker(id); err != nil {
			debugLog("worker %d: pinning failed: %v", id, err)
		}
	}

	// A task that calls runtime.Goexit unwinds this goroutine past the
	// loop. Start a replacement under the same id so WorkerCount stays true.
	exited := true
	defer func() {
		if exited {
			debugLog("worker %d: task exited the goroutine, respawning", id)
			p.respawn(id)
		}
	}()

	debugLog("worker %d started", id)
	for {
		t, ok := p.next()
		if !ok {
			exited = false
			debugLog("worker %d exiting", id)
			return nil
		}
		p.execute(id, t)
	}
}

// respawn starts a worker with the given id in the current group. It is only
// called from a worker that has not yet left the group, so a concurrent
// Shutdown is still waiting on that group and waits for the replacement too.
func (p *ThreadPool) respawn(id int) {
	g := p.group
	g.Go(func() error {
		return p.worker(id)
	})
}

// next blocks until a task is available or the pool is joining with an
// empty queue, in which case ok is false.
func (p *ThreadPool) next() (t *task, ok bool) {
	p.queueMu.Lock()
	defer p.queueMu.Unlock()

	for !p.joining && p.queue.Empty() {
		p.wakeup.Wait()
	}
	return p.dequeueLocked()
}

// tryNext pops the head task without waiting.
func (p *ThreadPool) tryNext() (t *task, ok bool) {
	p.queueMu.Lock()
	defer p.queueMu.Unlock()

	return p.dequeueLocked()
}

// dequeueLocked pops the head task and moves it from pending to busy in the
// same critical section, so WaitCompletion never sees it in neither state.
// queueMu must be held.
func (p *ThreadPool) dequeueLocked() (*task, bool) {
	t, ok := p.queue.Pop()
	if !ok {
		return nil, false
	}

	p.doneMu.Lock()
	p.pending--
	p.busy++
	p.doneMu.Unlock()

	return t, true
}

// enqueue appends t and wakes one idle worker. It reports false, leaving the
// task unqueued, when the pool is joining.
func (p *ThreadPool) enqueue(t *task) bool {
	p.queueMu.Lock()
	defer p.queueMu.Unlock()

	if p.joining {
		p.dropped.Add(1)
		debugLog("dropped task %d: pool is shutting down", t.id)
		return false
	}

	p.queue.Push(t)
	p.submitted.Add(1)

	p.doneMu.Lock()
	p.pending++
	p.doneMu.Unlock()

	p.wakeup.Signal()
	return true
}

// drain executes queued tasks on the calling goroutine until the queue is empty.
func (p *ThreadPool) drain(workerID int) {
	for {
		t, ok := p.tryNext()
		if !ok {
			return
		}
		p.execute(workerID, t)
	}
}

// execute runs a dequeued task outside every lock, then marks the executor
// idle and wakes barrier waiters. The bookkeeping is deferred so it also runs
// when the task body ends the goroutine with runtime.Goexit.
func (p *ThreadPool) execute(workerID int, t *task) {
	var err error
	finished := false
	defer func() {
		if !finished {
			err = ErrTaskExited
		}
		p.finish(workerID, t, err)
	}()

	if p.conf.rateLimiter != nil {
		// cannot fail: the context never ends and burst is positive
		_ = p.conf.rateLimiter.Wait(context.Background())
	}

	if p.conf.onTaskStart != nil {
		p.callHook(func() { p.conf.onTaskStart(workerID, t.id) })
	}

	err = t.run(workerID)
	finished = true
}

func (p *ThreadPool) finish(workerID int, t *task, err error) {
	if p.conf.onTaskEnd != nil {
		p.callHook(func() { p.conf.onTaskEnd(workerID, t.id, err) })
	}

	p.completed.Add(1)
	if err != nil {
		p.failed.Add(1)
	}

	p.doneMu.Lock()
	p.busy--
	p.taskDone.Broadcast()
	p.doneMu.Unlock()
}

// callHook runs a user hook, swallowing a panic so a faulty hook cannot kill
// a worker or leave the busy counter raised.
func (p *ThreadPool) callHook(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			debugLog("hook panic: %v", r)
		}
	}()
	fn()
}
