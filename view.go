package staticvec

import "iter"

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int {
	return v.slots.Cap()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at index i, or an IndexError if i is outside the
// live range [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &IndexError{Index: i, Size: v.size}
	}
	return *v.slots.Ptr(i), nil
}

// Set replaces the element at index i, destroying the previous value (the
// drop hook runs on it). Returns an IndexError if i is outside the live
// range.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= v.size {
		return &IndexError{Index: i, Size: v.size}
	}
	v.slots.Destroy(i)
	v.slots.Set(i, val)
	return nil
}

// Get returns the element at index i without an error path. An index
// outside the live range panics, the same trade as slice indexing; use At
// when the index is not already known to be valid.
func (v *Vector[T]) Get(i int) T {
	return v.slots.Window(v.size)[i]
}

// Front returns the first element. Panics on an empty vector.
func (v *Vector[T]) Front() T {
	return v.slots.Window(v.size)[0]
}

// Back returns the last element. Panics on an empty vector.
func (v *Vector[T]) Back() T {
	return v.slots.Window(v.size)[v.size-1]
}

// Data returns the live elements as a contiguous slice sharing the
// vector's storage. The slice's length and capacity both equal Len(), so
// appending to it cannot reach dead slots. Writing through it mutates the
// vector; the slice is invalidated by any operation that changes Len() or
// exchanges contents.
func (v *Vector[T]) Data() []T {
	return v.slots.Window(v.size)
}

// All returns a forward index/value iterator over the live elements. The
// iterator is invalidated by any operation that changes Len() or
// exchanges contents.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.slots.Ptr(i)) {
				return
			}
		}
	}
}

// Values returns a forward value iterator over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.slots.Ptr(i)) {
				return
			}
		}
	}
}

// Backward returns a reverse index/value iterator over the live elements:
// the same walk as All, taken back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.slots.Ptr(i)) {
				return
			}
		}
	}
}
