// Package mino models a falling piece over a grid board: the blocks it is
// made of, the synchronized trial-then-commit movement across them, and the
// moment the piece settles into the board's pile.
package mino

// Point is a grid coordinate. Row grows downward, Col grows to the right.
type Point struct {
	Row int
	Col int
}

// Add returns p shifted by the given offset.
func (p Point) Add(o Point) Point {
	return Point{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// ShapeID identifies the shape occupying a board cell. Boards use it to
// distinguish a block's own shape from foreign occupancy during trial moves.
type ShapeID uint64

// NoShape is the occupant of an empty or untracked cell.
const NoShape ShapeID = 0

// Colour is an opaque visual tag carried by each block. The core never
// interprets it; renderers map it to pixels.
type Colour uint8

const (
	ColourNone Colour = iota
	ColourCyan
	ColourYellow
	ColourPurple
	ColourGreen
	ColourRed
	ColourBlue
	ColourOrange
)

// Board is the playfield capability the core consumes. Blocks hold a
// non-owning reference to it and never mutate it.
//
// Occupant reports the id of the shape occupying a cell, or NoShape when the
// cell is empty or untracked. A board typically tracks only the settled pile;
// a cell occupied by the querying block's own shape must report that shape's
// id so trial moves can treat it as free.
type Board interface {
	InBounds(p Point) bool
	Occupant(p Point) ShapeID
}

// MoveResult reports the outcome of a downward move attempt.
type MoveResult int

const (
	// Moved means every block shifted down one row.
	Moved MoveResult = iota
	// Locked means at least one block could not move down and the shape
	// joined the pile instead.
	Locked
)

// State is the lifecycle state of a Shape.
type State int

const (
	// Active shapes are falling and accept movement operations.
	Active State = iota
	// Joined shapes have settled into the pile. Terminal.
	Joined
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case Joined:
		return "Joined"
	default:
		return "Unknown"
	}
}

func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "Moved"
	case Locked:
		return "Locked"
	default:
		return "Unknown"
	}
}
