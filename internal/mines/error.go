package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("cell out of bounds")
)

// OutOfBoundsError reports a cell outside of a width x height board. It
// matches [ErrOutOfBounds] with [errors.Is].
type OutOfBoundsError struct {
	Cell          Cell
	Width, Height int
}

// [OutOfBoundsError] implements [error]
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"cell %s out of bounds for %dx%d board", e.Cell, e.Width, e.Height,
	)
}

func (e OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

func invalidConfiguration(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...)
}
