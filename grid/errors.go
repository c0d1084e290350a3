package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a coordinate outside 0-255 or a grid size outside 1-256
	ErrOutOfRange = errors.New("grid: out of range")
	// ErrOutOfBounds reports a cell that lies outside a grid
	ErrOutOfBounds = errors.New("grid: out of bounds")
)

// BoundsError describes a cell rejected by a grid
type BoundsError struct {
	Cell Cell
	Grid Grid
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: cell %s outside %s", e.Cell, e.Grid)
}

// Unwrap allows errors.Is(err, ErrOutOfBounds)
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
