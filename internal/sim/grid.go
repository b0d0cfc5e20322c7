package sim

// Position is a cell on the arena grid. Equality is exact.
type Position struct {
	X, Y int
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "?"
}

// Opposite returns the reversed heading (Left↔Right, Up↔Down).
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the unit step for the heading. Up is +y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	default:
		return 0, -1
	}
}

// Step returns p moved one cell along d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is the bounded play area. Cells satisfy 0 <= x < Width, 0 <= y < Height.
type Grid struct {
	Width  int
	Height int
}

func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// DirectionSet is the set of directional inputs held down during a frame.
type DirectionSet uint8

const (
	bitLeft DirectionSet = 1 << iota
	bitUp
	bitRight
	bitDown
)

func dirBit(d Direction) DirectionSet {
	switch d {
	case Left:
		return bitLeft
	case Up:
		return bitUp
	case Right:
		return bitRight
	default:
		return bitDown
	}
}

// With returns the set with d pressed.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | dirBit(d)
}

// Has reports whether d is pressed.
func (s DirectionSet) Has(d Direction) bool {
	return s&dirBit(d) != 0
}

// inputPriority is the order used when several directions are held at once;
// the first pressed entry wins.
var inputPriority = [4]Direction{Left, Down, Up, Right}
