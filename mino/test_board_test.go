package mino_test

import (
	"github.com/plus3/minofall/mino"
)

// testBoard is a minimal playfield for exercising the core: fixed bounds and
// a settable occupancy map.
type testBoard struct {
	width  int
	height int
	occ    map[mino.Point]mino.ShapeID
}

func newTestBoard(width, height int) *testBoard {
	return &testBoard{
		width:  width,
		height: height,
		occ:    make(map[mino.Point]mino.ShapeID),
	}
}

func (b *testBoard) InBounds(p mino.Point) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

func (b *testBoard) Occupant(p mino.Point) mino.ShapeID {
	return b.occ[p]
}

func (b *testBoard) fill(p mino.Point, id mino.ShapeID) {
	b.occ[p] = id
}

func (b *testBoard) fillRow(row int, id mino.ShapeID) {
	for col := 0; col < b.width; col++ {
		b.occ[mino.Point{Row: row, Col: col}] = id
	}
}

// positions snapshots every block position of a shape.
func positions(s *mino.Shape) []mino.Point {
	out := make([]mino.Point, s.Len())
	for i := 0; i < s.Len(); i++ {
		out[i] = s.Block(i).Position()
	}
	return out
}
