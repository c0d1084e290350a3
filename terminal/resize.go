package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellgrid/grid"
)

// FitGrid returns a grid anchored at (0,0) covering a width x height screen
// Screens larger than the addressable field are truncated to 256 on that axis
func FitGrid(width, height int) (grid.Grid, error) {
	g, err := grid.New(min(width, grid.MaxExtent), min(height, grid.MaxExtent))
	if err != nil {
		return grid.Grid{}, fmt.Errorf("fit %dx%d screen: %w", width, height, err)
	}
	return g, nil
}

// GridForResize returns the grid for the new screen size reported by ev
func GridForResize(ev *tcell.EventResize) (grid.Grid, error) {
	w, h := ev.Size()
	return FitGrid(w, h)
}
