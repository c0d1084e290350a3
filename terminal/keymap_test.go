package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellgrid/grid"
)

func TestKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   grid.Direction
		wantOK bool
	}{
		{"Arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), grid.Up, true},
		{"Arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), grid.Right, true},
		{"Vi h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), grid.Left, true},
		{"Vi j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), grid.Down, true},
		{"Unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"Ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModCtrl), 0, false},
		{"Unbound key", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Lookup(tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	if _, ok := km.Lookup(nil); ok {
		t.Error("Expected nil event to be unbound")
	}
}

func TestFitGrid(t *testing.T) {
	g, err := FitGrid(80, 24)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.Width() != 80 || g.Depth() != 24 {
		t.Errorf("Expected 80x24, got %dx%d", g.Width(), g.Depth())
	}

	g, err = FitGrid(400, 300)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.Width() != grid.MaxExtent || g.Depth() != grid.MaxExtent {
		t.Errorf("Expected truncation to %d, got %dx%d", grid.MaxExtent, g.Width(), g.Depth())
	}

	if _, err := FitGrid(0, 24); !errors.Is(err, grid.ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for empty screen, got %v", err)
	}
}

func TestGridForResize(t *testing.T) {
	g, err := GridForResize(tcell.NewEventResize(120, 40))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.End() != grid.NewCell(119, 39) {
		t.Errorf("Expected end (119,39), got %s", g.End())
	}
}
