// Package queue provides the unsynchronized FIFO used as the pool's work queue.
// Callers are responsible for locking.
package queue

const minCapacity = 16

// Ring is a growable FIFO ring buffer. Capacity is always a power of two so
// that wrap-around is a mask instead of a modulo.
//
// The zero value is ready to use.
type Ring[T any] struct {
	buf  []T
	head int
	size int
}

// NewRing creates a ring with room for at least capacity items before it
// has to grow.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{
		buf: make([]T, nextPowerOfTwo(max(capacity, minCapacity))),
	}
}

// Len returns the number of queued items.
func (r *Ring[T]) Len() int {
	return r.size
}

// Empty reports whether the ring holds no items.
func (r *Ring[T]) Empty() bool {
	return r.size == 0
}

// Push appends v at the tail, growing the buffer when full.
func (r *Ring[T]) Push(v T) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.size)&(len(r.buf)-1)] = v
	r.size++
}

// Pop removes and returns the head item. ok is false when the ring is empty.
func (r *Ring[T]) Pop() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}

	var zero T
	v = r.buf[r.head]
	r.buf[r.head] = zero // release the reference for the GC
	r.head = (r.head + 1) & (len(r.buf) - 1)
	r.size--
	if r.size == 0 {
		r.head = 0
	}
	return v, true
}

// Peek returns the head item without removing it.
func (r *Ring[T]) Peek() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}
	return r.buf[r.head], true
}

func (r *Ring[T]) grow() {
	newCap := nextPowerOfTwo(max(len(r.buf)*2, minCapacity))
	buf := make([]T, newCap)

	// unwrap into the new buffer so head starts at 0
	if r.size > 0 {
		n := copy(buf, r.buf[r.head:])
		copy(buf[n:], r.buf[:r.head])
	}

	r.buf = buf
	r.head = 0
}

// nextPowerOfTwo returns the next power of 2 >= n
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}

	if n&(n-1) == 0 {
		return n
	}

	power := 1
	for power < n {
		power *= 2
	}
	return power
}
