package deque

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index, iterator position, or amount
// refers to more elements than the deque holds.
var ErrOutOfRange = errors.New("out of range")

// ErrInvalidArgument is returned for malformed ranges or amounts
// and for iterators that belong to a different deque.
var ErrInvalidArgument = errors.New("invalid argument")

func outOfRangef(format string, args ...any) error {
	return fmt.Errorf("deque: %s: %w", fmt.Sprintf(format, args...), ErrOutOfRange)
}

func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("deque: %s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}
