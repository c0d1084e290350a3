package grid

import (
	"fmt"
	"math"
)

// MaxExtent is the largest width or depth a grid can have
const MaxExtent = math.MaxUint8 + 1

// Grid is a closed rectangle between two corner cells
// Corners are stored as given; all derived queries use the normalized min/max corners
type Grid struct {
	start, end Cell
}

// New creates a width x depth grid anchored at (0,0)
func New(width, depth int) (Grid, error) {
	if width < 1 || width > MaxExtent || depth < 1 || depth > MaxExtent {
		return Grid{}, fmt.Errorf("grid %dx%d: size must be within 1-%d: %w", width, depth, MaxExtent, ErrOutOfRange)
	}
	return Grid{
		start: Cell{},
		end:   Cell{x: uint8(width - 1), y: uint8(depth - 1)},
	}, nil
}

// FromCorners creates a grid spanning two cells in either order
func FromCorners(start, end Cell) Grid {
	return Grid{start: start, end: end}
}

func (g Grid) Start() Cell { return g.start }
func (g Grid) End() Cell   { return g.end }

// Min returns the corner with the smallest coordinates
func (g Grid) Min() Cell {
	return Cell{x: min(g.start.x, g.end.x), y: min(g.start.y, g.end.y)}
}

// Max returns the corner with the largest coordinates
func (g Grid) Max() Cell {
	return Cell{x: max(g.start.x, g.end.x), y: max(g.start.y, g.end.y)}
}

// Width returns the number of columns (1-256)
func (g Grid) Width() int {
	return int(g.Max().x) - int(g.Min().x) + 1
}

// Depth returns the number of rows (1-256)
func (g Grid) Depth() int {
	return int(g.Max().y) - int(g.Min().y) + 1
}

// Size returns the number of cells
func (g Grid) Size() int {
	return g.Width() * g.Depth()
}

// Contains reports whether c lies inside the grid
func (g Grid) Contains(c Cell) bool {
	return c.Within(g)
}

// Clamp returns the nearest cell inside the grid
func (g Grid) Clamp(c Cell) Cell {
	lo, hi := g.Min(), g.Max()
	return Cell{x: max(lo.x, min(c.x, hi.x)), y: max(lo.y, min(c.y, hi.y))}
}

// Member returns the cell at offset (dx, dy) from the min corner
func (g Grid) Member(dx, dy int) (Cell, error) {
	if dx < 0 || dx >= g.Width() || dy < 0 || dy >= g.Depth() {
		return Cell{}, fmt.Errorf("offset (%d,%d) in %dx%d grid: %w", dx, dy, g.Width(), g.Depth(), ErrOutOfBounds)
	}
	lo := g.Min()
	return Cell{x: lo.x + uint8(dx), y: lo.y + uint8(dy)}, nil
}

func (g Grid) String() string {
	return fmt.Sprintf("[%s-%s]", g.start, g.end)
}

// span returns the inclusive bounds on d's axis
func (g Grid) span(d Direction) (lo, hi int) {
	a, b := g.Min(), g.Max()
	if d.Horizontal() {
		return int(a.x), int(b.x)
	}
	return int(a.y), int(b.y)
}
