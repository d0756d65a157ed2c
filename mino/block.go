package mino

// Block is a single occupied cell belonging to a shape. It offers paired
// trial/commit primitives for each kind of move: the trial consults the board
// for legality without mutating anything, the commit applies the move
// unconditionally. Keeping the two separable lets a Shape trial every block
// before committing any of them.
type Block struct {
	board  Board
	owner  ShapeID
	pos    Point
	colour Colour
}

// NewBlock creates a block at pos. Panics if board is nil.
func NewBlock(board Board, colour Colour, pos Point) *Block {
	if board == nil {
		panic("mino: block requires a board")
	}
	return &Block{board: board, pos: pos, colour: colour}
}

// Position returns the block's current grid coordinate.
func (b *Block) Position() Point {
	return b.pos
}

// Colour returns the block's visual tag.
func (b *Block) Colour() Colour {
	return b.colour
}

// free reports whether the block may legally occupy p: in bounds and either
// empty or occupied by the block's own shape.
func (b *Block) free(p Point) bool {
	if !b.board.InBounds(p) {
		return false
	}
	occ := b.board.Occupant(p)
	return occ == NoShape || occ == b.owner
}

// TryMoveDown reports whether the cell directly below is legal.
func (b *Block) TryMoveDown() bool {
	return b.free(Point{Row: b.pos.Row + 1, Col: b.pos.Col})
}

// MoveDown shifts the block down one row. The caller must have validated the
// move with TryMoveDown; no re-check happens here.
func (b *Block) MoveDown() {
	b.pos.Row++
}

// TryMoveLeft reports whether the cell directly to the left is legal.
func (b *Block) TryMoveLeft() bool {
	return b.free(Point{Row: b.pos.Row, Col: b.pos.Col - 1})
}

// MoveLeft shifts the block one column left without validation.
func (b *Block) MoveLeft() {
	b.pos.Col--
}

// TryMoveRight reports whether the cell directly to the right is legal.
func (b *Block) TryMoveRight() bool {
	return b.free(Point{Row: b.pos.Row, Col: b.pos.Col + 1})
}

// MoveRight shifts the block one column right without validation.
func (b *Block) MoveRight() {
	b.pos.Col++
}

// TryRotate reports whether the cell at position+offset is legal.
func (b *Block) TryRotate(offset Point) bool {
	return b.free(b.pos.Add(offset))
}

// Rotate applies the offset to the block's position without validation.
func (b *Block) Rotate(offset Point) {
	b.pos = b.pos.Add(offset)
}
