package pool

import (
	"errors"
	"math"
)

// SplitFor runs fn over the strided index range 0, stride, 2*stride, ...,
// (count-1)*stride by cutting [0, count) into contiguous batches and
// submitting one task per batch. The calling goroutine then assists and waits
// for the pool to come to rest.
//
// The batch size is max(ceil(count/split), atLeast), so split is the target
// number of batches and atLeast a floor on batch size; a large floor yields
// fewer batches than split, and the last batch may be shorter. Non-positive
// stride, split and atLeast are treated as 1. count <= 0 does nothing, and
// ErrIndexOverflow is returned without running anything when count*stride
// does not fit in an int.
//
// fn receives the executing worker id and the index. It runs concurrently with
// itself and must be safe for that. SplitFor returns the errors of the
// batches whose fn panicked, joined, or ErrPoolShuttingDown if a shutdown
// stopped it from submitting every batch. It works on a pool with no workers,
// and it must not be called from inside a task (see WaitCompletion).
func SplitFor(p *ThreadPool, count, stride, split, atLeast int, fn func(workerID, index int)) error {
	if count <= 0 {
		return nil
	}
	stride = max(stride, 1)
	if count > math.MaxInt/stride {
		return ErrIndexOverflow
	}
	batch := batchSize(count, split, atLeast)

	var errs []error
	futures := make([]*Future[struct{}], 0, ceilDiv(count, batch))

	for i := 0; i < count; i += batch {
		start, end := i*stride, (i+min(batch, count-i))*stride

		f, err := TrySubmit(p, func(workerID int) (struct{}, error) {
			for j := start; j < end; j += stride {
				fn(workerID, j)
			}
			return struct{}{}, nil
		})
		if err != nil {
			errs = append(errs, err)
			break
		}
		futures = append(futures, f)
	}

	p.Assist()
	p.WaitCompletion()

	// every future is resolved once the pool is at rest
	for _, f := range futures {
		if _, err := f.Get(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ParallelFor runs fn for every index in [0, count), splitting the range into
// one batch per worker plus one for the calling goroutine.
func ParallelFor(p *ThreadPool, count int, fn func(workerID, index int)) error {
	return SplitFor(p, count, 1, p.WorkerCount()+1, 1, fn)
}

// Batches returns how many tasks SplitFor submits for the given arguments.
func Batches(count, split, atLeast int) int {
	if count <= 0 {
		return 0
	}
	return ceilDiv(count, batchSize(count, split, atLeast))
}

func batchSize(count, split, atLeast int) int {
	split = max(split, 1)
	atLeast = max(atLeast, 1)
	return max(ceilDiv(count, split), atLeast)
}

// ceilDiv expects a >= 0 and b > 0; it does not overflow for large b.
func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}
	return (a-1)/b + 1
}
