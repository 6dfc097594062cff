// Package staticvec provides a fixed-capacity sequence container. A Vector
// holds up to a capacity fixed at construction time, in storage allocated
// exactly once; it behaves like a resizable vector up to that bound, then
// refuses further growth with a CapacityError. No operation after
// construction allocates.
//
// A Vector is a plain single-threaded value container with no internal
// synchronization. Concurrent use of one instance requires external
// locking; distinct instances share no state.
package staticvec

import (
	"fmt"
	"iter"

	"github.com/FairForge/staticvec/internal/slab"
)

// Vector is a sequence of up to Cap elements of T. The zero value is not
// usable; construct with New, Of, FromSlice, Repeat, FromFunc, or Collect.
type Vector[T any] struct {
	slots slab.Slab[T]
	size  int
}

// New creates an empty vector with the given fixed capacity. Panics if
// capacity is negative, matching make.
func New[T any](capacity int, opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{slots: slab.New[T](capacity, nil)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Of creates a vector whose capacity and contents are inferred from the
// argument list: Of(1, 2, 3) is a full vector of capacity 3. It cannot
// fail, since the capacity is by construction exactly the element count.
// The variadic element list leaves no room for an options parameter;
// chain With to configure, as in Of(1, 2, 3).With(WithDrop(hook)).
func Of[T any](values ...T) *Vector[T] {
	v := New[T](len(values))
	for i, val := range values {
		v.slots.Set(i, val)
	}
	v.size = len(values)
	return v
}

// FromSlice creates a vector of the given capacity holding a copy of src.
// If src has more elements than capacity it returns a CapacityError and
// constructs nothing.
func FromSlice[T any](capacity int, src []T, opts ...Option[T]) (*Vector[T], error) {
	if len(src) > capacity {
		return nil, &CapacityError{Cap: capacity, Requested: len(src)}
	}
	v := New[T](capacity, opts...)
	copy(v.slots.Window(len(src)), src)
	v.size = len(src)
	return v, nil
}

// Repeat creates a vector of the given capacity holding count copies of
// value. Returns a CapacityError if count exceeds capacity. Panics if
// count is negative.
func Repeat[T any](capacity, count int, value T, opts ...Option[T]) (*Vector[T], error) {
	if count < 0 {
		panic("staticvec: negative count")
	}
	if count > capacity {
		return nil, &CapacityError{Cap: capacity, Requested: count}
	}
	v := New[T](capacity, opts...)
	for i := 0; i < count; i++ {
		v.slots.Set(i, value)
	}
	v.size = count
	return v, nil
}

// FromFunc creates a vector of the given capacity holding count elements
// produced by gen, called in index order. If gen fails on element k, the
// k elements already produced are destroyed in reverse order (the drop
// hook runs on each) and the wrapped error is returned: a failed
// construction leaves no live elements behind. Returns a CapacityError
// before calling gen at all if count exceeds capacity. Panics if count is
// negative.
func FromFunc[T any](capacity, count int, gen func(i int) (T, error), opts ...Option[T]) (*Vector[T], error) {
	if count < 0 {
		panic("staticvec: negative count")
	}
	if count > capacity {
		return nil, &CapacityError{Cap: capacity, Requested: count}
	}
	v := New[T](capacity, opts...)
	for i := 0; i < count; i++ {
		val, err := gen(i)
		if err != nil {
			v.slots.DestroyAll(v.size)
			v.size = 0
			return nil, fmt.Errorf("staticvec: constructing element %d: %w", i, err)
		}
		v.slots.Set(i, val)
		v.size = i + 1
	}
	return v, nil
}

// Collect creates a vector of the given capacity from an iterator. The
// sequence length is not knowable up front, so elements are installed as
// they arrive; if the sequence yields more than capacity elements, the
// constructed prefix is destroyed in reverse order and a CapacityError
// returned.
func Collect[T any](capacity int, seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v := New[T](capacity, opts...)
	for val := range seq {
		if v.size == capacity {
			v.slots.DestroyAll(v.size)
			v.size = 0
			return nil, &CapacityError{Cap: capacity, Requested: capacity + 1}
		}
		v.slots.Set(v.size, val)
		v.size++
	}
	return v, nil
}

// Clone returns an independent vector with the same capacity, contents,
// and drop hook. Elements are copied by assignment; for deep copies or
// fallible copying use CloneFunc.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{slots: slab.New[T](v.Cap(), v.slots.Drop())}
	copy(c.slots.Window(v.size), v.slots.Window(v.size))
	c.size = v.size
	return c
}

// CloneFunc returns an independent vector built by passing each element
// through copyFn in index order. If copyFn fails on element k, the k
// copies already made are destroyed in reverse order and the wrapped
// error returned; the receiver is never touched.
func (v *Vector[T]) CloneFunc(copyFn func(T) (T, error)) (*Vector[T], error) {
	c := &Vector[T]{slots: slab.New[T](v.Cap(), v.slots.Drop())}
	for i := 0; i < v.size; i++ {
		val, err := copyFn(*v.slots.Ptr(i))
		if err != nil {
			c.slots.DestroyAll(c.size)
			c.size = 0
			return nil, fmt.Errorf("staticvec: copying element %d: %w", i, err)
		}
		c.slots.Set(i, val)
		c.size = i + 1
	}
	return c, nil
}

// CopyFrom replaces the receiver's contents with a copy of other's, by
// building the full replacement first and exchanging it in: if other's
// size exceeds the receiver's capacity, a CapacityError is returned and
// the receiver is untouched. The replaced elements are destroyed newest
// first. Copying from itself is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if other == v {
		return nil
	}
	if other.size > v.Cap() {
		return &CapacityError{Cap: v.Cap(), Requested: other.size}
	}
	replacement := slab.New[T](v.Cap(), v.slots.Drop())
	copy(replacement.Window(other.size), other.slots.Window(other.size))

	old, oldSize := v.slots, v.size
	v.slots, v.size = replacement, other.size
	old.DestroyAll(oldSize)
	return nil
}

// MoveFrom transfers other's elements into the receiver, leaving other
// empty with its capacity intact. The receiver's previous elements are
// destroyed newest first; the transferred elements are released from
// other without its drop hook, since they live on here. If other's size
// exceeds the receiver's capacity, a CapacityError is returned and
// neither vector changes.
func (v *Vector[T]) MoveFrom(other *Vector[T]) error {
	if other == v {
		return nil
	}
	if other.size > v.Cap() {
		return &CapacityError{Cap: v.Cap(), Requested: other.size}
	}
	v.slots.DestroyAll(v.size)
	n := other.size
	copy(v.slots.Window(n), other.slots.Window(n))
	v.size = n
	for i := n - 1; i >= 0; i-- {
		other.slots.Release(i)
	}
	other.size = 0
	return nil
}

// PushBack appends a value. If the vector is full it returns a
// CapacityError and changes nothing. O(1).
func (v *Vector[T]) PushBack(val T) error {
	if v.size == v.Cap() {
		return &CapacityError{Cap: v.Cap(), Requested: v.size + 1}
	}
	v.slots.Set(v.size, val)
	v.size++
	return nil
}

// EmplaceBack appends the value produced by build. The capacity check
// runs first: on a full vector build is never invoked. O(1).
func (v *Vector[T]) EmplaceBack(build func() T) error {
	if v.size == v.Cap() {
		return &CapacityError{Cap: v.Cap(), Requested: v.size + 1}
	}
	v.slots.Set(v.size, build())
	v.size++
	return nil
}

// PopBack removes and returns the last element; its slot is released
// without the drop hook, since ownership passes to the caller. Panics on
// an empty vector: emptiness is a documented precondition, not a checked
// error. O(1).
func (v *Vector[T]) PopBack() T {
	val := *v.slots.Ptr(v.size - 1)
	v.size--
	v.slots.Release(v.size)
	return val
}

// Clear destroys all live elements in reverse index order and resets the
// size to zero. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.slots.DestroyAll(v.size)
	v.size = 0
}

// Swap exchanges the contents of two vectors element-wise. The common
// prefix is exchanged pairwise; the longer vector's tail is then moved
// into the shorter one's free slots (released from its source, not
// destroyed), and the sizes are exchanged. Capacities and drop hooks stay
// with their vectors, so each side's size must fit the other side's
// capacity; otherwise a CapacityError is returned and nothing changes.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if v.size > other.Cap() {
		return &CapacityError{Cap: other.Cap(), Requested: v.size}
	}
	if other.size > v.Cap() {
		return &CapacityError{Cap: v.Cap(), Requested: other.size}
	}
	short, long := v, other
	if short.size > long.size {
		short, long = long, short
	}
	for i := 0; i < short.size; i++ {
		a, b := short.slots.Ptr(i), long.slots.Ptr(i)
		*a, *b = *b, *a
	}
	for i := short.size; i < long.size; i++ {
		short.slots.Set(i, *long.slots.Ptr(i))
		long.slots.Release(i)
	}
	short.size, long.size = long.size, short.size
	return nil
}
