package cpu

import (
	"errors"
	"testing"
)

func TestCoreFor(t *testing.T) {
	n := NumCPU()

	tests := []struct {
		name     string
		workerID int
		want     int
	}{
		{"first worker", 0, 0},
		{"wraps around", n, 0},
		{"wraps with offset", n + 1, 1 % n},
		{"negative id", -1, 1 % n},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coreFor(tt.workerID); got != tt.want {
				t.Errorf("coreFor(%d) = %d, want %d", tt.workerID, got, tt.want)
			}
		})
	}
}

func TestPinWorker(t *testing.T) {
	done := make(chan struct{})

	go func() {
		defer close(done)

		err := PinWorker(0)

		// restricted containers may refuse sched_setaffinity
		if err != nil && !errors.Is(err, ErrPinningUnsupported) {
			t.Logf("pinning failed: %v", err)
		}
	}()

	<-done
}

func TestLockThread(t *testing.T) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		release := LockThread()
		release()
	}()

	<-done
}
