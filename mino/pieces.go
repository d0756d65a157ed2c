package mino

import "fmt"

// rotationStates is the number of distinct orientations a piece cycles
// through inside its bounding box.
const rotationStates = 4

// PieceDef describes a shape variant as data: the cells it occupies inside
// an n-by-n bounding box, its colour, and whether it rotates. One Shape type
// parameterized by a PieceDef replaces a subclass per tetromino kind.
type PieceDef struct {
	Name   string
	Colour Colour
	// Box is the side length of the bounding box the piece rotates within.
	// Ignored for static pieces.
	Box int
	// Cells are the occupied cells relative to the box origin.
	Cells []Point
	// Static pieces carry no rotation table and never rotate.
	Static bool
}

// Spawn creates a shape for this piece with its box origin at origin.
// Panics when the definition is malformed: no cells, or a cell outside the
// bounding box of a rotatable piece.
func (d PieceDef) Spawn(board Board, origin Point) *Shape {
	if len(d.Cells) == 0 {
		panic(fmt.Sprintf("mino: piece %q has no cells", d.Name))
	}
	blocks := make([]*Block, len(d.Cells))
	for i, c := range d.Cells {
		blocks[i] = NewBlock(board, d.Colour, origin.Add(c))
	}
	var offsets [][]Point
	if !d.Static {
		offsets = rotationTable(d.Name, d.Cells, d.Box)
	}
	return NewShape(board, blocks, offsets)
}

// rotationTable derives per-state rotation offsets from the piece's cells.
// A clockwise quarter turn inside an n-by-n box maps (r, c) to (c, n-1-r);
// applying it rotationStates times is the identity, so a full cycle returns
// every block to its starting cell.
func rotationTable(name string, cells []Point, box int) [][]Point {
	if box <= 0 {
		panic(fmt.Sprintf("mino: piece %q has bounding box %d", name, box))
	}
	for _, c := range cells {
		if c.Row < 0 || c.Row >= box || c.Col < 0 || c.Col >= box {
			panic(fmt.Sprintf("mino: piece %q cell %+v outside %dx%d box", name, c, box, box))
		}
	}

	table := make([][]Point, rotationStates)
	cur := append([]Point(nil), cells...)
	for r := range rotationStates {
		row := make([]Point, len(cur))
		for i, c := range cur {
			next := Point{Row: c.Col, Col: box - 1 - c.Row}
			row[i] = Point{Row: next.Row - c.Row, Col: next.Col - c.Col}
			cur[i] = next
		}
		table[r] = row
	}
	return table
}

// StandardPieces returns the seven standard tetrominoes. The O piece is
// static: rotating it inside its box would be the identity anyway.
func StandardPieces() []PieceDef {
	return []PieceDef{
		{Name: "I", Colour: ColourCyan, Box: 4,
			Cells: []Point{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{Name: "O", Colour: ColourYellow, Static: true,
			Cells: []Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{Name: "T", Colour: ColourPurple, Box: 3,
			Cells: []Point{{0, 1}, {1, 0}, {1, 1}, {1, 2}}},
		{Name: "S", Colour: ColourGreen, Box: 3,
			Cells: []Point{{0, 1}, {0, 2}, {1, 0}, {1, 1}}},
		{Name: "Z", Colour: ColourRed, Box: 3,
			Cells: []Point{{0, 0}, {0, 1}, {1, 1}, {1, 2}}},
		{Name: "J", Colour: ColourBlue, Box: 3,
			Cells: []Point{{0, 0}, {1, 0}, {1, 1}, {1, 2}}},
		{Name: "L", Colour: ColourOrange, Box: 3,
			Cells: []Point{{0, 2}, {1, 0}, {1, 1}, {1, 2}}},
	}
}
