package pool

// Stats is a point-in-time snapshot of a pool.
type Stats struct {
	// Workers is the live worker count.
	Workers int
	// Busy counts goroutines executing a task, assisting callers included.
	Busy int
	// Queued counts tasks waiting in the queue.
	Queued int

	Submitted int64
	Completed int64
	Failed    int64
	// Dropped counts submissions rejected during shutdown.
	Dropped int64
}

// Idle returns the number of workers not executing a task. Assisting callers
// can make Busy exceed Workers, in which case Idle is zero.
func (s Stats) Idle() int {
	return max(s.Workers-s.Busy, 0)
}

// Stats returns a snapshot of the pool's counters. Busy and Queued are read
// together; the cumulative counters are read independently and may be a few
// tasks apart under load.
func (p *ThreadPool) Stats() Stats {
	p.doneMu.Lock()
	busy, queued := p.busy, p.pending
	p.doneMu.Unlock()

	return Stats{
		Workers:   p.WorkerCount(),
		Busy:      busy,
		Queued:    queued,
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
		Dropped:   p.dropped.Load(),
	}
}
