package match3

import "fmt"

// Coord addresses a cell on the board.
// X grows to the right; Y grows upward from the bottom row (Y = 0),
// which is the row gravity pulls tokens toward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

// Adjacent reports whether other is one orthogonal step away.
func (c Coord) Adjacent(other Coord) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Dirs lists the cardinal directions in scan order.
var Dirs = [4]Dir{DirUp, DirLeft, DirRight, DirDown}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the one-step offset for this direction.
// Up increases Y because row 0 is the bottom of the board.
func (d Dir) Delta() Coord {
	switch d {
	case DirUp:
		return C(0, 1)
	case DirRight:
		return C(1, 0)
	case DirDown:
		return C(0, -1)
	case DirLeft:
		return C(-1, 0)
	default:
		return C(0, 0)
	}
}

// clockwise rotates a unit offset a quarter turn clockwise.
func clockwise(d Coord) Coord {
	return C(d.Y, -d.X)
}

// counterClockwise rotates a unit offset a quarter turn counter-clockwise.
func counterClockwise(d Coord) Coord {
	return C(-d.Y, d.X)
}
