// Package pile provides a concrete playfield for the mino core: a bounded
// grid that tracks settled cells and absorbs shapes when they lock.
package pile

import (
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/plus3/minofall/mino"
)

// Cell is one settled grid cell.
type Cell struct {
	Owner  mino.ShapeID
	Colour mino.Colour
}

// Board is a Width x Height playfield implementing mino.Board. Row 0 is the
// top row; row Height-1 rests on the floor. Occupancy is keyed by packed cell
// coordinates in an int-keyed map.
//
// Board is not safe for concurrent use.
type Board struct {
	width  int
	height int
	cells  *intmap.Map[uint64, Cell]
}

// New creates an empty board. Panics when either dimension is not positive.
func New(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("pile: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  intmap.New[uint64, Cell](width * height),
	}
}

func key(p mino.Point) uint64 {
	return uint64(uint32(p.Row))<<32 | uint64(uint32(p.Col))
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether p lies inside the playfield.
func (b *Board) InBounds(p mino.Point) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// Occupant returns the id of the shape settled at p, or mino.NoShape when
// the cell is empty or outside the board.
func (b *Board) Occupant(p mino.Point) mino.ShapeID {
	if !b.InBounds(p) {
		return mino.NoShape
	}
	cell, ok := b.cells.Get(key(p))
	if !ok {
		return mino.NoShape
	}
	return cell.Owner
}

// At returns the settled cell at p, if any.
func (b *Board) At(p mino.Point) (Cell, bool) {
	if !b.InBounds(p) {
		return Cell{}, false
	}
	return b.cells.Get(key(p))
}

// Fill marks a single cell as settled. Panics when p is outside the board.
func (b *Board) Fill(p mino.Point, owner mino.ShapeID, colour mino.Colour) {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("pile: fill %+v outside %dx%d board", p, b.width, b.height))
	}
	b.cells.Put(key(p), Cell{Owner: owner, Colour: colour})
}

// Absorb copies a shape's blocks into the pile. Register it as the shape's
// lock subscriber so ownership of the cells transfers to the board the
// moment the shape joins.
func (b *Board) Absorb(s *mino.Shape) {
	for i := 0; i < s.Len(); i++ {
		blk := s.Block(i)
		b.cells.Put(key(blk.Position()), Cell{Owner: s.ID(), Colour: blk.Colour()})
	}
}

// Len returns the number of settled cells.
func (b *Board) Len() int {
	return b.cells.Len()
}

// Reset empties the board.
func (b *Board) Reset() {
	b.cells.Clear()
}

// rowFull reports whether every cell of row is settled.
func (b *Board) rowFull(row int) bool {
	for col := 0; col < b.width; col++ {
		if _, ok := b.cells.Get(key(mino.Point{Row: row, Col: col})); !ok {
			return false
		}
	}
	return true
}

// ClearFull removes every full row and shifts the rows above it down.
// Returns the number of rows cleared.
func (b *Board) ClearFull() int {
	full := make(map[int]bool)
	for row := 0; row < b.height; row++ {
		if b.rowFull(row) {
			full[row] = true
		}
	}
	if len(full) == 0 {
		return 0
	}

	// Snapshot the surviving rows top to bottom, then rebuild the pile
	// bottom-up so each survivor lands as low as it can.
	survivors := make([][]Cell, 0, b.height)
	occupied := make([][]bool, 0, b.height)
	for row := 0; row < b.height; row++ {
		if full[row] {
			continue
		}
		cells := make([]Cell, b.width)
		occ := make([]bool, b.width)
		for col := 0; col < b.width; col++ {
			if c, ok := b.cells.Get(key(mino.Point{Row: row, Col: col})); ok {
				cells[col] = c
				occ[col] = true
			}
		}
		survivors = append(survivors, cells)
		occupied = append(occupied, occ)
	}

	b.cells.Clear()
	dst := b.height - 1
	for i := len(survivors) - 1; i >= 0; i-- {
		for col := 0; col < b.width; col++ {
			if occupied[i][col] {
				b.cells.Put(key(mino.Point{Row: dst, Col: col}), survivors[i][col])
			}
		}
		dst--
	}
	return len(full)
}
