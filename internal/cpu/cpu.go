// Package cpu binds worker goroutines to OS threads and, where the platform
// allows it, to a single CPU core.
package cpu

import (
	"errors"
	"runtime"
)

// ErrPinningUnsupported is returned by PinWorker on platforms without a
// thread affinity API. The goroutine is still locked to its OS thread.
var ErrPinningUnsupported = errors.New("cpu: thread pinning is not supported on this platform")

// NumCPU returns the number of logical CPUs available.
func NumCPU() int {
	return runtime.NumCPU()
}

// LockThread wires the calling goroutine to its current OS thread for the
// lifetime of a worker. The returned func undoes it and must run on the
// same goroutine.
func LockThread() func() {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}

// PinWorker locks the calling goroutine to an OS thread and pins that thread
// to core workerID modulo NumCPU.
//
// The goroutine stays locked on purpose. When it exits the runtime terminates
// the thread, so the narrowed affinity mask never reaches other goroutines.
// Unlocking would hand the pinned thread back to the scheduler. The thread is
// locked even when err is non-nil.
func PinWorker(workerID int) error {
	runtime.LockOSThread()
	_, err := pinToCore(coreFor(workerID))
	return err
}

func coreFor(workerID int) int {
	n := NumCPU()
	if workerID < 0 {
		workerID = -workerID
	}
	return workerID % n
}
