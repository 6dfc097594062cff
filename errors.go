package staticvec

import (
	"errors"
	"fmt"
)

// Sentinel targets for errors.Is. The concrete errors returned by the
// package carry the offending numbers; these exist so callers can match
// without destructuring.
var (
	// ErrCapacity matches any error caused by an operation that would
	// exceed a vector's fixed capacity.
	ErrCapacity = errors.New("staticvec: capacity exceeded")

	// ErrOutOfRange matches any error caused by an index outside the live
	// range.
	ErrOutOfRange = errors.New("staticvec: index out of range")
)

// CapacityError reports an operation that would have created more than Cap
// live elements. It is always returned before any mutation: the vector is
// exactly as it was.
type CapacityError struct {
	Cap       int // fixed capacity of the vector involved
	Requested int // element count the operation needed to fit
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("staticvec: capacity exceeded: need %d, cap %d", e.Requested, e.Cap)
}

// Is reports a match against ErrCapacity.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}

// IndexError reports a checked access outside the live range [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("staticvec: index %d out of range, size %d", e.Index, e.Size)
}

// Is reports a match against ErrOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}
