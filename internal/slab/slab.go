// Package slab manages the fixed storage behind a vector: a buffer of N
// slots allocated exactly once, whose liveness is tracked by the caller.
// A slot is either live (holds a caller-installed value) or dead (holds
// T's zero value). The slab never grows, shrinks, or reallocates.
package slab

// Slab is a fixed-length run of element slots with an optional teardown
// hook. The caller decides which slots are live; the slab only performs
// the transitions.
type Slab[T any] struct {
	buf  []T
	drop func(T)
}

// New allocates storage for n slots. The allocation happens here and never
// again; every later operation works in place. drop, if non-nil, is invoked
// on a value whenever its slot is destroyed. Panics if n is negative.
func New[T any](n int, drop func(T)) Slab[T] {
	return Slab[T]{
		buf:  make([]T, n),
		drop: drop,
	}
}

// Cap returns the number of slots.
func (s *Slab[T]) Cap() int {
	return len(s.buf)
}

// Drop returns the teardown hook, nil if none was set.
func (s *Slab[T]) Drop() func(T) {
	return s.drop
}

// SetDrop installs the teardown hook.
func (s *Slab[T]) SetDrop(drop func(T)) {
	s.drop = drop
}

// Set installs a value into slot i. The slot must be dead; overwriting a
// live slot skips its teardown.
func (s *Slab[T]) Set(i int, v T) {
	s.buf[i] = v
}

// Ptr returns a pointer to slot i, valid only while that slot stays live.
func (s *Slab[T]) Ptr(i int) *T {
	return &s.buf[i]
}

// Window returns the first n slots as a slice capped at n, so callers
// cannot append through it into dead slots.
func (s *Slab[T]) Window(n int) []T {
	return s.buf[:n:n]
}

// Destroy tears down the live value in slot i: the drop hook runs, then
// the slot is zeroed so no reference survives for the GC to keep alive.
func (s *Slab[T]) Destroy(i int) {
	if s.drop != nil {
		s.drop(s.buf[i])
	}
	var zero T
	s.buf[i] = zero
}

// Release zeroes slot i without running the drop hook. Used when the
// value's ownership moved elsewhere and nothing was destroyed.
func (s *Slab[T]) Release(i int) {
	var zero T
	s.buf[i] = zero
}

// DestroyAll tears down slots n-1 down to 0, the reverse of the order they
// were filled in.
func (s *Slab[T]) DestroyAll(n int) {
	for i := n - 1; i >= 0; i-- {
		s.Destroy(i)
	}
}
