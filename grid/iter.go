package grid

import "iter"

// CellIter walks every cell of a grid in row-major order without allocating
// Usage: for it := g.Cells(); it.Next(); { c := it.Cell() }
type CellIter struct {
	lo, hi  Cell
	cur     Cell
	started bool
	done    bool
}

// Cells returns a fresh iterator over all cells, rows top to bottom, each row left to right
func (g Grid) Cells() *CellIter {
	return &CellIter{lo: g.Min(), hi: g.Max()}
}

// Next advances to the next cell, returning false once the grid is exhausted
func (it *CellIter) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		it.cur = it.lo
		return true
	}

	switch {
	case it.cur.x < it.hi.x:
		it.cur.x++
	case it.cur.y < it.hi.y:
		it.cur.x = it.lo.x
		it.cur.y++
	default:
		it.done = true
		return false
	}
	return true
}

// Cell returns the current cell; valid after Next returned true
func (it *CellIter) Cell() Cell {
	return it.cur
}

// GridIter walks the rows or columns of a grid, yielding each as a one-cell-thick grid
type GridIter struct {
	lo, hi  Cell
	columns bool
	pos     uint8
	started bool
	done    bool
}

// Rows returns a fresh iterator over full-width rows, top to bottom
func (g Grid) Rows() *GridIter {
	return &GridIter{lo: g.Min(), hi: g.Max()}
}

// Columns returns a fresh iterator over full-depth columns, left to right
func (g Grid) Columns() *GridIter {
	return &GridIter{lo: g.Min(), hi: g.Max(), columns: true}
}

// Next advances to the next row or column
func (it *GridIter) Next() bool {
	if it.done {
		return false
	}
	first, last := it.lo.y, it.hi.y
	if it.columns {
		first, last = it.lo.x, it.hi.x
	}
	if !it.started {
		it.started = true
		it.pos = first
		return true
	}
	if it.pos < last {
		it.pos++
		return true
	}
	it.done = true
	return false
}

// Grid returns the current row or column
func (it *GridIter) Grid() Grid {
	if it.columns {
		return Grid{start: Cell{x: it.pos, y: it.lo.y}, end: Cell{x: it.pos, y: it.hi.y}}
	}
	return Grid{start: Cell{x: it.lo.x, y: it.pos}, end: Cell{x: it.hi.x, y: it.pos}}
}

// CellSeq is Cells as a range-over-func sequence
func (g Grid) CellSeq() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for it := g.Cells(); it.Next(); {
			if !yield(it.Cell()) {
				return
			}
		}
	}
}

// RowSeq is Rows as a range-over-func sequence
func (g Grid) RowSeq() iter.Seq[Grid] {
	return gridSeq(g.Rows)
}

// ColumnSeq is Columns as a range-over-func sequence
func (g Grid) ColumnSeq() iter.Seq[Grid] {
	return gridSeq(g.Columns)
}

func gridSeq(newIter func() *GridIter) iter.Seq[Grid] {
	return func(yield func(Grid) bool) {
		for it := newIter(); it.Next(); {
			if !yield(it.Grid()) {
				return
			}
		}
	}
}
