package grid

// Direction is one of the four axis-aligned movement directions
// Up and Down act on y, Left and Right act on x
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions in declaration order
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Horizontal reports whether the direction moves along x
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// forward reports whether the direction increases its coordinate
func (d Direction) forward() bool {
	return d == Down || d == Right
}

// Policy selects what happens when a move crosses a boundary
type Policy uint8

const (
	// Saturate stops at the boundary
	Saturate Policy = iota
	// Wrap continues from the opposite boundary
	Wrap
)

func (p Policy) String() string {
	if p == Wrap {
		return "wrap"
	}
	return "saturate"
}
