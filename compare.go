package staticvec

import (
	"cmp"
	"slices"
)

// Comparisons are package functions rather than methods because they need
// constraints (comparable, cmp.Ordered) that the element type of an
// existing Vector cannot be narrowed to. They follow the slices package:
// equality requires equal lengths and elementwise equality; ordering is
// lexicographic, with an equal prefix making the shorter side smaller.

// Equal reports whether a and b hold the same elements in the same order.
// Capacity does not participate: a full capacity-2 vector and a
// capacity-10 vector holding the same two elements are equal.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal under a caller-supplied equivalence.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically: the first unequal element
// pair decides, and if one is a prefix of the other the shorter compares
// smaller. Returns -1, 0, or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare under a caller-supplied ordering, which must
// return negative, zero, or positive in the usual way.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmp)
}
