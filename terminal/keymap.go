package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellgrid/grid"
)

// KeyMap maps special keys and plain runes to directions
type KeyMap struct {
	Keys  map[tcell.Key]grid.Direction
	Runes map[rune]grid.Direction
}

// DefaultKeyMap binds the arrow keys and vi h/j/k/l
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Keys: map[tcell.Key]grid.Direction{
			tcell.KeyUp:    grid.Up,
			tcell.KeyDown:  grid.Down,
			tcell.KeyLeft:  grid.Left,
			tcell.KeyRight: grid.Right,
		},
		Runes: map[rune]grid.Direction{
			'h': grid.Left,
			'j': grid.Down,
			'k': grid.Up,
			'l': grid.Right,
		},
	}
}

// Lookup returns the direction bound to ev
// Runes typed with Ctrl or Alt held are not motions
func (k KeyMap) Lookup(ev *tcell.EventKey) (grid.Direction, bool) {
	if ev == nil {
		return 0, false
	}
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return 0, false
		}
		d, ok := k.Runes[ev.Rune()]
		return d, ok
	}
	d, ok := k.Keys[ev.Key()]
	return d, ok
}
