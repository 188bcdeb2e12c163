package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every RangeError.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidArgument is matched by every InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// RangeError reports a coordinate outside [0, 1], or a negative entropy
// passed to a model that requires entropy >= 0.
type RangeError struct {
	Coordinate string
	Value      float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: %s=%v out of range [0, 1]", e.Coordinate, e.Value)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// InvalidArgumentError reports a caller contract violation such as an unknown
// coordinate name or a non-positive step count.
type InvalidArgumentError struct {
	Argument string
	Value    any
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid argument %s: %v", e.Argument, e.Value)
	}
	return fmt.Sprintf("invalid argument %s: %v (%s)", e.Argument, e.Value, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
