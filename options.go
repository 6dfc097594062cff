package staticvec

// Option configures a vector at construction time.
type Option[T any] func(*Vector[T])

// WithDrop installs a teardown hook invoked once per element whenever that
// element is destroyed: by Clear, Set replacement, CopyFrom's teardown of
// the replaced contents, or the rollback of a failed bounded construction.
// The hook is not invoked for elements whose ownership leaves the vector,
// as with PopBack's return value or a tail moved across by Swap.
//
// The hook belongs to the vector it was set on and does not travel with
// elements across Swap or MoveFrom.
func WithDrop[T any](drop func(T)) Option[T] {
	return func(v *Vector[T]) {
		v.slots.SetDrop(drop)
	}
}

// With applies options to an existing vector and returns it. It exists
// for constructors like Of whose variadic element list cannot also take
// an options parameter: Of(1, 2, 3).With(WithDrop(hook)).
func (v *Vector[T]) With(opts ...Option[T]) *Vector[T] {
	for _, opt := range opts {
		opt(v)
	}
	return v
}
