package grid

import (
	"cmp"
	"iter"
	"slices"
)

// GridMap is a map keyed by cells that only accepts keys inside its grid
// Insert is the only way to add keys, so every stored key is within the grid
// Not safe for concurrent mutation
type GridMap[V any] struct {
	grid  Grid
	cells map[Cell]V
}

// NewGridMap creates an empty map bound to g
func NewGridMap[V any](g Grid) *GridMap[V] {
	return &GridMap[V]{
		grid:  g,
		cells: make(map[Cell]V),
	}
}

// Grid returns the bounds of the map
func (m *GridMap[V]) Grid() Grid {
	return m.grid
}

// Len returns the number of stored cells
func (m *GridMap[V]) Len() int {
	return len(m.cells)
}

// Insert stores v at c, returning the replaced value if any
// Fails with a *BoundsError when c is outside the grid, leaving the map unchanged
func (m *GridMap[V]) Insert(c Cell, v V) (prev V, replaced bool, err error) {
	if !c.Within(m.grid) {
		return prev, false, &BoundsError{Cell: c, Grid: m.grid}
	}
	prev, replaced = m.cells[c]
	m.cells[c] = v
	return prev, replaced, nil
}

// Get returns the value at c; out-of-bounds cells are simply absent
func (m *GridMap[V]) Get(c Cell) (V, bool) {
	v, ok := m.cells[c]
	return v, ok
}

// Contains reports whether a value is stored at c
func (m *GridMap[V]) Contains(c Cell) bool {
	_, ok := m.cells[c]
	return ok
}

// Remove deletes and returns the value at c
func (m *GridMap[V]) Remove(c Cell) (V, bool) {
	v, ok := m.cells[c]
	if ok {
		delete(m.cells, c)
	}
	return v, ok
}

// Clear removes all values, keeping the grid
func (m *GridMap[V]) Clear() {
	clear(m.cells)
}

// Keys returns stored cells in the same row-major order as Grid.Cells
func (m *GridMap[V]) Keys() []Cell {
	keys := make([]Cell, 0, len(m.cells))
	for c := range m.cells {
		keys = append(keys, c)
	}
	slices.SortFunc(keys, func(a, b Cell) int {
		return cmp.Or(cmp.Compare(a.y, b.y), cmp.Compare(a.x, b.x))
	})
	return keys
}

// All yields stored entries in row-major order
// Entries removed during iteration are skipped
func (m *GridMap[V]) All() iter.Seq2[Cell, V] {
	return func(yield func(Cell, V) bool) {
		for _, c := range m.Keys() {
			v, ok := m.cells[c]
			if !ok {
				continue
			}
			if !yield(c, v) {
				return
			}
		}
	}
}
