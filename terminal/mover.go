package terminal

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellgrid/grid"
)

// maxCount caps the pending count prefix
const maxCount = 1_000_000

// Mover moves a cursor cell in response to key events
// Digits build a count prefix applied to the next motion, as in vi
// Not safe for concurrent use
type Mover struct {
	Grid   grid.Grid
	Policy grid.Policy
	Keys   KeyMap
	// Logger receives rejected resizes; nil disables logging
	Logger *log.Logger

	pending uint
}

// NewMover creates a mover over g with the default key map
func NewMover(g grid.Grid, p grid.Policy) *Mover {
	return &Mover{
		Grid:   g,
		Policy: p,
		Keys:   DefaultKeyMap(),
	}
}

// Pending returns the count typed so far, 0 if none
func (m *Mover) Pending() uint {
	return m.pending
}

// HandleEvent applies a key or resize event to cursor c
// Returns the new cursor and whether the event was consumed
func (m *Mover) HandleEvent(c grid.Cell, ev tcell.Event) (grid.Cell, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.HandleKey(c, ev)
	case *tcell.EventResize:
		g, err := GridForResize(ev)
		if err != nil {
			m.logf("resize ignored: %v", err)
			return c, false
		}
		m.Grid = g
		return g.Clamp(c), true
	}
	return c, false
}

// HandleKey applies a key event to cursor c
func (m *Mover) HandleKey(c grid.Cell, ev *tcell.EventKey) (grid.Cell, bool) {
	if ev.Key() == tcell.KeyEscape {
		consumed := m.pending != 0
		m.pending = 0
		return c, consumed
	}

	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		r := ev.Rune()
		// Leading '0' is a motion, not a count digit
		if (r >= '1' && r <= '9') || (r == '0' && m.pending != 0) {
			if m.pending < maxCount {
				m.pending = m.pending*10 + uint(r-'0')
			}
			return c, true
		}
		if d, ok := edgeMotions[r]; ok {
			m.pending = 0
			return c.ProjectIn(m.Grid, d), true
		}
	}

	d, ok := m.Keys.Lookup(ev)
	if !ok {
		m.pending = 0
		return c, false
	}

	n := m.pending
	if n == 0 {
		n = 1
	}
	m.pending = 0
	return c.MoveIn(m.Grid, m.Policy, d, n), true
}

// edgeMotions jump to a grid edge: line start/end and screen top/bottom
var edgeMotions = map[rune]grid.Direction{
	'0': grid.Left,
	'$': grid.Right,
	'H': grid.Up,
	'L': grid.Down,
}

func (m *Mover) logf(format string, args ...any) {
	if m.Logger != nil {
		m.Logger.Printf(format, args...)
	}
}
