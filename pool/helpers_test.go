package pool

import (
	"testing"
	"time"
)

// gate blocks tasks until it is opened.
type gate chan struct{}

func newGate() gate { return make(gate) }

func (g gate) wait() { <-g }
func (g gate) open() { close(g) }

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

// waitDone fails the test if ch is not closed in time.
func waitDone(t *testing.T, what string, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func (p *ThreadPool) isJoining() bool {
	p.queueMu.Lock()
	defer p.queueMu.Unlock()
	return p.joining
}
