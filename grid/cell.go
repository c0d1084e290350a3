package grid

import (
	"cmp"
	"fmt"
	"math"
)

// Cell is a position on the 0-255 field
// Cells are compared by value and every move returns a new Cell
type Cell struct {
	x, y uint8
}

// NewCell creates a cell from coordinates that are bounded by type
func NewCell(x, y uint8) Cell {
	return Cell{x: x, y: y}
}

// CellFromInts creates a cell from untyped coordinates, rejecting values outside 0-255
func CellFromInts(x, y int) (Cell, error) {
	if x < 0 || x > math.MaxUint8 || y < 0 || y > math.MaxUint8 {
		return Cell{}, fmt.Errorf("cell (%d,%d): %w", x, y, ErrOutOfRange)
	}
	return Cell{x: uint8(x), y: uint8(y)}, nil
}

func (c Cell) X() uint8 { return c.x }
func (c Cell) Y() uint8 { return c.y }

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.x, c.y)
}

// Compare orders cells by x, then y
func Compare(a, b Cell) int {
	return cmp.Or(cmp.Compare(a.x, b.x), cmp.Compare(a.y, b.y))
}

// Within reports whether the cell lies inside the grid, corners inclusive
func (c Cell) Within(g Grid) bool {
	lo, hi := g.Min(), g.Max()
	return c.x >= lo.x && c.x <= hi.x && c.y >= lo.y && c.y <= hi.y
}

// RelativeTo returns the cell's offset from the grid's min corner
func (c Cell) RelativeTo(g Grid) (Cell, error) {
	if !c.Within(g) {
		return Cell{}, &BoundsError{Cell: c, Grid: g}
	}
	lo := g.Min()
	return Cell{x: c.x - lo.x, y: c.y - lo.y}, nil
}

// axis returns the coordinate that d moves along
func (c Cell) axis(d Direction) int {
	if d.Horizontal() {
		return int(c.x)
	}
	return int(c.y)
}

// with returns a copy of c with the coordinate on d's axis replaced
func (c Cell) with(d Direction, v int) Cell {
	if d.Horizontal() {
		c.x = uint8(v)
	} else {
		c.y = uint8(v)
	}
	return c
}

// --- Field-wide movement (0-255) ---

// Saturating moves n steps, stopping at 0 or 255
func (c Cell) Saturating(d Direction, n uint) Cell {
	if d > Right {
		return c
	}
	return c.with(d, saturate(c.axis(d), 0, math.MaxUint8, d, n))
}

// Wrapping moves n steps, wrapping modulo 256
func (c Cell) Wrapping(d Direction, n uint) Cell {
	next, _ := c.Overflowing(d, n)
	return next
}

// Overflowing moves n steps modulo 256 and reports whether the move crossed a boundary
func (c Cell) Overflowing(d Direction, n uint) (Cell, bool) {
	if d > Right {
		return c, false
	}
	p, wrapped := wrap(c.axis(d), 0, math.MaxUint8, d, n)
	return c.with(d, p), wrapped
}

// Move moves n steps and fails with ErrOutOfRange instead of leaving 0-255
func (c Cell) Move(d Direction, n uint) (Cell, error) {
	next, wrapped := c.Overflowing(d, n)
	if wrapped {
		return c, fmt.Errorf("move %s %d from %s: %w", d, n, c, ErrOutOfRange)
	}
	return next, nil
}

// --- Grid-relative movement ---

// SaturatingIn moves n steps, stopping at the grid edge
// A cell outside the grid is first projected onto the grid along d's axis
func (c Cell) SaturatingIn(g Grid, d Direction, n uint) Cell {
	if d > Right {
		return c
	}
	lo, hi := g.span(d)
	return c.with(d, saturate(clamp(c.axis(d), lo, hi), lo, hi, d, n))
}

// WrappingIn moves n steps, continuing from the opposite grid edge
// The axis is treated as a ring of the grid's width or depth, so the result is
// always inside the grid on that axis
func (c Cell) WrappingIn(g Grid, d Direction, n uint) Cell {
	next, _ := c.OverflowingIn(g, d, n)
	return next
}

// OverflowingIn is WrappingIn that also reports whether the move crossed the grid edge
func (c Cell) OverflowingIn(g Grid, d Direction, n uint) (Cell, bool) {
	if d > Right {
		return c, false
	}
	lo, hi := g.span(d)
	p, wrapped := wrap(c.axis(d), lo, hi, d, n)
	return c.with(d, p), wrapped
}

// MoveIn moves n steps inside the grid under the given policy
func (c Cell) MoveIn(g Grid, p Policy, d Direction, n uint) Cell {
	if p == Wrap {
		return c.WrappingIn(g, d, n)
	}
	return c.SaturatingIn(g, d, n)
}

// ProjectIn moves to the grid edge in direction d
func (c Cell) ProjectIn(g Grid, d Direction) Cell {
	if d > Right {
		return c
	}
	lo, hi := g.span(d)
	if d.forward() {
		return c.with(d, hi)
	}
	return c.with(d, lo)
}

// GapIn returns how many steps remain before the grid edge in direction d
func (c Cell) GapIn(g Grid, d Direction) int {
	if d > Right {
		return 0
	}
	lo, hi := g.span(d)
	p := clamp(c.axis(d), lo, hi)
	if d.forward() {
		return hi - p
	}
	return p - lo
}

// WillOverflowIn reports whether n steps in direction d would cross the grid edge
func (c Cell) WillOverflowIn(g Grid, d Direction, n uint) bool {
	return n > uint(c.GapIn(g, d))
}

func (c Cell) SaturatingUp(g Grid, n uint) Cell    { return c.SaturatingIn(g, Up, n) }
func (c Cell) SaturatingDown(g Grid, n uint) Cell  { return c.SaturatingIn(g, Down, n) }
func (c Cell) SaturatingLeft(g Grid, n uint) Cell  { return c.SaturatingIn(g, Left, n) }
func (c Cell) SaturatingRight(g Grid, n uint) Cell { return c.SaturatingIn(g, Right, n) }

func (c Cell) WrappingUp(g Grid, n uint) Cell    { return c.WrappingIn(g, Up, n) }
func (c Cell) WrappingDown(g Grid, n uint) Cell  { return c.WrappingIn(g, Down, n) }
func (c Cell) WrappingLeft(g Grid, n uint) Cell  { return c.WrappingIn(g, Left, n) }
func (c Cell) WrappingRight(g Grid, n uint) Cell { return c.WrappingIn(g, Right, n) }

// --- Axis arithmetic ---
// p is expected within [lo, hi] for saturate; wrap accepts any p

func clamp(p, lo, hi int) int {
	return max(lo, min(p, hi))
}

func saturate(p, lo, hi int, d Direction, n uint) int {
	if d.forward() {
		if n > uint(hi-p) {
			return hi
		}
		return p + int(n)
	}
	if n > uint(p-lo) {
		return lo
	}
	return p - int(n)
}

func wrap(p, lo, hi int, d Direction, n uint) (int, bool) {
	size := hi - lo + 1
	off := ((p-lo)%size + size) % size
	k := int(n % uint(size))
	if d.forward() {
		return lo + (off+k)%size, n > uint(size-1-off)
	}
	return lo + (off-k+size)%size, n > uint(off)
}
