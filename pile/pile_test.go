package pile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/minofall/mino"
	"github.com/plus3/minofall/pile"
)

func TestNewValidation(t *testing.T) {
	assert.Panics(t, func() { pile.New(0, 20) })
	assert.Panics(t, func() { pile.New(10, -1) })
}

func TestBoardBoundsAndOccupancy(t *testing.T) {
	b := pile.New(10, 20)

	assert.True(t, b.InBounds(mino.Point{Row: 0, Col: 0}))
	assert.True(t, b.InBounds(mino.Point{Row: 19, Col: 9}))
	assert.False(t, b.InBounds(mino.Point{Row: -1, Col: 0}))
	assert.False(t, b.InBounds(mino.Point{Row: 20, Col: 0}))
	assert.False(t, b.InBounds(mino.Point{Row: 0, Col: 10}))

	p := mino.Point{Row: 5, Col: 5}
	assert.Equal(t, mino.NoShape, b.Occupant(p))

	b.Fill(p, 7, mino.ColourGreen)
	assert.Equal(t, mino.ShapeID(7), b.Occupant(p))

	cell, ok := b.At(p)
	require.True(t, ok)
	assert.Equal(t, mino.ColourGreen, cell.Colour)

	// Out-of-bounds queries are empty, out-of-bounds fills are programmer
	// errors.
	assert.Equal(t, mino.NoShape, b.Occupant(mino.Point{Row: -3, Col: 2}))
	assert.Panics(t, func() { b.Fill(mino.Point{Row: 20, Col: 0}, 1, mino.ColourRed) })
}

func TestAbsorbOnLock(t *testing.T) {
	b := pile.New(6, 8)

	def := mino.StandardPieces()[1] // O piece
	s := def.Spawn(b, mino.Point{Row: 0, Col: 2})
	s.OnLock(b.Absorb)

	s.Drop()
	require.Equal(t, mino.Joined, s.State())
	assert.Equal(t, 4, b.Len())

	for i := 0; i < s.Len(); i++ {
		blk := s.Block(i)
		cell, ok := b.At(blk.Position())
		require.True(t, ok)
		assert.Equal(t, s.ID(), cell.Owner)
		assert.Equal(t, mino.ColourYellow, cell.Colour)
	}
}

func TestPieceStacksOnPile(t *testing.T) {
	b := pile.New(4, 8)

	spawn := func() *mino.Shape {
		def := mino.PieceDef{
			Name:   "bar",
			Colour: mino.ColourBlue,
			Static: true,
			Cells:  []mino.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		}
		s := def.Spawn(b, mino.Point{Row: 0, Col: 1})
		s.OnLock(b.Absorb)
		return s
	}

	first := spawn()
	first.Drop()
	assert.Equal(t, first.ID(), b.Occupant(mino.Point{Row: 7, Col: 1}))

	second := spawn()
	second.Drop()
	assert.Equal(t, mino.Point{Row: 6, Col: 1}, second.Block(0).Position(),
		"second piece must rest on the first, not inside it")
	assert.Equal(t, 4, b.Len())
}

func TestClearFull(t *testing.T) {
	t.Run("no full rows", func(t *testing.T) {
		b := pile.New(4, 6)
		b.Fill(mino.Point{Row: 5, Col: 0}, 1, mino.ColourRed)
		assert.Equal(t, 0, b.ClearFull())
		assert.Equal(t, 1, b.Len())
	})

	t.Run("single row with remainder above", func(t *testing.T) {
		b := pile.New(4, 6)
		for col := 0; col < 4; col++ {
			b.Fill(mino.Point{Row: 5, Col: col}, 1, mino.ColourRed)
		}
		b.Fill(mino.Point{Row: 4, Col: 2}, 2, mino.ColourBlue)

		assert.Equal(t, 1, b.ClearFull())
		assert.Equal(t, 1, b.Len())

		// The surviving cell shifts down onto the floor.
		cell, ok := b.At(mino.Point{Row: 5, Col: 2})
		require.True(t, ok)
		assert.Equal(t, mino.ColourBlue, cell.Colour)
		assert.Equal(t, mino.NoShape, b.Occupant(mino.Point{Row: 4, Col: 2}))
	})

	t.Run("two separated rows", func(t *testing.T) {
		b := pile.New(3, 6)
		for col := 0; col < 3; col++ {
			b.Fill(mino.Point{Row: 5, Col: col}, 1, mino.ColourRed)
			b.Fill(mino.Point{Row: 3, Col: col}, 1, mino.ColourRed)
		}
		b.Fill(mino.Point{Row: 4, Col: 0}, 2, mino.ColourGreen)
		b.Fill(mino.Point{Row: 2, Col: 1}, 3, mino.ColourYellow)

		assert.Equal(t, 2, b.ClearFull())
		assert.Equal(t, 2, b.Len())

		green, ok := b.At(mino.Point{Row: 5, Col: 0})
		require.True(t, ok)
		assert.Equal(t, mino.ColourGreen, green.Colour)

		yellow, ok := b.At(mino.Point{Row: 4, Col: 1})
		require.True(t, ok)
		assert.Equal(t, mino.ColourYellow, yellow.Colour)
	})
}

func TestReset(t *testing.T) {
	b := pile.New(4, 4)
	b.Fill(mino.Point{Row: 3, Col: 0}, 1, mino.ColourRed)
	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, mino.NoShape, b.Occupant(mino.Point{Row: 3, Col: 0}))
}
