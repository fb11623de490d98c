package shelf

import "errors"

var (
	// ErrChildNotFound reports an operation on a handle the registry does
	// not hold.
	ErrChildNotFound = errors.New("child not found")

	// ErrDuplicateChild reports an Add for a handle already present.
	ErrDuplicateChild = errors.New("child already present")

	// ErrNotDescendant reports an Add for a handle that fails the
	// container's structural-ownership precondition.
	ErrNotDescendant = errors.New("child is not managed by this container")

	// ErrIndexOutOfRange reports an explicit index outside [0, len).
	// Add never returns it: an out-of-range Add index clamps instead.
	ErrIndexOutOfRange = errors.New("index out of range")
)
