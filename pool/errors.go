package pool

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrPoolShuttingDown is returned by TrySubmit and SplitFor when a
	// shutdown is in progress.
	ErrPoolShuttingDown = errors.New("pool is shutting down")

	// ErrTaskPanic is wrapped by the error stored for a task whose body panicked.
	ErrTaskPanic = errors.New("worker panic")

	// ErrTaskExited is stored for a task whose body ended its goroutine with
	// runtime.Goexit (t.FailNow inside a task, for example). It wraps
	// ErrTaskPanic.
	ErrTaskExited = fmt.Errorf("%w: task exited its goroutine", ErrTaskPanic)

	// ErrIndexOverflow is returned by SplitFor when count*stride does not fit
	// in an int.
	ErrIndexOverflow = errors.New("index range overflows int")
)

// panicError converts a recovered panic value into an error wrapping
// ErrTaskPanic, with the stack of the panicking goroutine attached.
func panicError(r any) error {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return fmt.Errorf("%w: %v\nstack trace:\n%s", ErrTaskPanic, r, buf[:n])
}

// invokeWithRecovery calls fn and converts a panic into an error so that a
// failing task never takes down the goroutine executing it.
func invokeWithRecovery[R any](fn TaskFunc[R], workerID int) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()

	return fn(workerID)
}
