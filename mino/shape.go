package mino

import "fmt"

var nextShapeID ShapeID = 1

// Shape is an ordered collection of blocks moved as one unit. Every movement
// or rotation is all-or-nothing: each block is trialled against the board
// first and the move commits only if every trial succeeds. When a downward
// trial fails the shape transitions Active -> Joined and notifies its
// subscribers exactly once.
//
// Shapes are not safe for concurrent use; callers must serialize all
// operations on a shape and must not mutate the board during a Drop.
type Shape struct {
	board    Board
	blocks   []*Block
	offsets  [][]Point
	rotation int
	state    State
	id       ShapeID
	lockSubs []func(*Shape)
}

// NewShape creates a shape from its blocks and an optional rotation offset
// table. offsets[r][i] is the offset applied to block i when rotating out of
// rotation state r. A nil table means the shape cannot rotate.
//
// Panics when board is nil, blocks is empty or contains a nil block, or any
// offset row is shorter than the block count. These are programmer errors,
// not runtime conditions.
func NewShape(board Board, blocks []*Block, offsets [][]Point) *Shape {
	if board == nil {
		panic("mino: shape requires a board")
	}
	if len(blocks) == 0 {
		panic("mino: shape requires at least one block")
	}
	for i, b := range blocks {
		if b == nil {
			panic(fmt.Sprintf("mino: shape block %d is nil", i))
		}
	}
	for r, row := range offsets {
		if len(row) < len(blocks) {
			panic(fmt.Sprintf("mino: rotation offsets for state %d cover %d blocks, need %d",
				r, len(row), len(blocks)))
		}
	}

	s := &Shape{
		board:   board,
		blocks:  blocks,
		offsets: offsets,
		id:      nextShapeID,
	}
	nextShapeID++

	for _, b := range blocks {
		b.owner = s.id
	}
	return s
}

// ID returns the shape's identity as reported to the board.
func (s *Shape) ID() ShapeID {
	return s.id
}

// Len returns the number of blocks. Fixed for the shape's lifetime.
func (s *Shape) Len() int {
	return len(s.blocks)
}

// State returns Active while the shape is falling and Joined once it has
// settled into the pile.
func (s *Shape) State() State {
	return s.state
}

// Rotation returns the current rotation index. Always zero for shapes
// without a rotation table.
func (s *Shape) Rotation() int {
	return s.rotation
}

// Block returns a copy of block i. The copy shares the shape's board and
// identity but mutating it never affects the shape. Panics when i is outside
// [0, Len).
func (s *Shape) Block(i int) *Block {
	if i < 0 || i >= len(s.blocks) {
		panic(fmt.Sprintf("mino: block index %d out of range [0, %d)", i, len(s.blocks)))
	}
	cp := *s.blocks[i]
	return &cp
}

// OnLock registers fn to be called when the shape joins the pile. Subscribers
// are invoked exactly once, in registration order, from within the MoveDown
// or Drop call that detected the lock.
func (s *Shape) OnLock(fn func(*Shape)) {
	if fn == nil {
		panic("mino: nil lock subscriber")
	}
	s.lockSubs = append(s.lockSubs, fn)
}

// MoveDown shifts every block down one row if every block can move, and
// returns Moved. Otherwise no block moves, the shape transitions to Joined,
// subscribers are notified, and Locked is returned. Calling MoveDown on a
// Joined shape returns Locked without re-notifying.
func (s *Shape) MoveDown() MoveResult {
	if s.state == Joined {
		return Locked
	}
	for _, b := range s.blocks {
		if !b.TryMoveDown() {
			s.join()
			return Locked
		}
	}
	for _, b := range s.blocks {
		b.MoveDown()
	}
	return Moved
}

// Drop moves the shape down one row at a time until a downward trial fails,
// then locks it. Each step re-checks the board, so the end state is identical
// to calling MoveDown in a loop. Returns the number of rows descended.
func (s *Shape) Drop() int {
	rows := 0
	for s.MoveDown() == Moved {
		rows++
	}
	return rows
}

// MoveLeft shifts every block one column left if every block can move.
// Reports whether the shape moved.
func (s *Shape) MoveLeft() bool {
	if s.state == Joined {
		return false
	}
	for _, b := range s.blocks {
		if !b.TryMoveLeft() {
			return false
		}
	}
	for _, b := range s.blocks {
		b.MoveLeft()
	}
	return true
}

// MoveRight shifts every block one column right if every block can move.
// Reports whether the shape moved.
func (s *Shape) MoveRight() bool {
	if s.state == Joined {
		return false
	}
	for _, b := range s.blocks {
		if !b.TryMoveRight() {
			return false
		}
	}
	for _, b := range s.blocks {
		b.MoveRight()
	}
	return true
}

// Rotate advances the shape to its next rotation state if every block can
// reach its offset cell. Reports whether the rotation happened. Rotating a
// shape without a rotation table is a no-op returning false.
func (s *Shape) Rotate() bool {
	if s.state == Joined || len(s.offsets) == 0 {
		return false
	}
	row := s.offsets[s.rotation]
	for i, b := range s.blocks {
		if !b.TryRotate(row[i]) {
			return false
		}
	}
	for i, b := range s.blocks {
		b.Rotate(row[i])
	}
	s.rotation = (s.rotation + 1) % len(s.offsets)
	return true
}

// join performs the Active -> Joined transition and fires the lock
// notification. Only reachable once per shape.
func (s *Shape) join() {
	s.state = Joined
	for _, fn := range s.lockSubs {
		fn(s)
	}
}
