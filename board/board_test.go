package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardAllPegged(t *testing.T) {
	b := New(5)
	assert.Equal(t, Position(15), b.MaxPos())
	assert.Equal(t, 15, b.PegCount())
	for pos := Position(1); pos <= 15; pos++ {
		pegged, err := b.Pegged(pos)
		require.NoError(t, err)
		assert.True(t, pegged, "pos=%d", pos)
	}
}

func TestNewBoardConnections(t *testing.T) {
	b := New(5)
	// Hand-checked connection maps for the apex and the middle of row 3.
	assert.Equal(t, map[Position]Position{4: 2, 6: 3}, b.cells[1].connections)
	assert.Equal(t, map[Position]Position{1: 2, 6: 5, 11: 7, 13: 8},
		b.cells[4].connections)
	// Row-boundary guard: 9 is the next-to-last position of row 4, so no
	// rightward jump (it would wrap into row 5).
	_, ok := b.cells[9].connections[11]
	assert.False(t, ok)
}

func TestConnectionSymmetry(t *testing.T) {
	for rows := 1; rows <= 10; rows++ {
		b := New(rows)
		for pos := Position(1); pos <= b.MaxPos(); pos++ {
			for dest, jumped := range b.cells[pos].connections {
				back, ok := b.cells[dest].connections[pos]
				require.True(t, ok, "rows=%d %d->%d has no reverse", rows, pos, dest)
				assert.Equal(t, jumped, back, "rows=%d %d<->%d", rows, pos, dest)
			}
		}
	}
}

func TestDegenerateBoard(t *testing.T) {
	b := New(0)
	assert.Equal(t, Position(0), b.MaxPos())
	assert.Equal(t, 0, b.PegCount())
	assert.False(t, b.AnyMoveExists())
	_, err := b.Pegged(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPeggedOutOfRange(t *testing.T) {
	b := New(5)
	for _, pos := range []Position{0, -1, 16, 100} {
		_, err := b.Pegged(pos)
		assert.ErrorIs(t, err, ErrOutOfRange, "pos=%d", pos)
	}
}

func TestRemovePlacePegAreNonMutating(t *testing.T) {
	b := New(5)
	b2, err := b.RemovePeg(4)
	require.NoError(t, err)

	pegged, _ := b.Pegged(4)
	assert.True(t, pegged, "original board was mutated")
	pegged, _ = b2.Pegged(4)
	assert.False(t, pegged)

	b3, err := b2.PlacePeg(4)
	require.NoError(t, err)
	pegged, _ = b2.Pegged(4)
	assert.False(t, pegged, "intermediate board was mutated")
	pegged, _ = b3.Pegged(4)
	assert.True(t, pegged)
}

func TestValidMoves(t *testing.T) {
	b := New(5)
	// Full board: nothing to jump into.
	assert.Empty(t, b.ValidMoves(1))

	b, err := b.RemovePeg(4)
	require.NoError(t, err)
	assert.Equal(t, map[Position]Position{4: 2}, b.ValidMoves(1))
	assert.Equal(t, map[Position]Position{4: 5}, b.ValidMoves(6))
	// The empty hole itself has no peg to move.
	assert.Empty(t, b.ValidMoves(4))
	// Off-board positions quietly have no moves.
	assert.Empty(t, b.ValidMoves(99))
}

func TestMakeMove(t *testing.T) {
	b := New(5)
	b, err := b.RemovePeg(4)
	require.NoError(t, err)

	nb, err := b.MakeMove(1, 4)
	require.NoError(t, err)
	for pos, want := range map[Position]bool{1: false, 2: false, 4: true} {
		pegged, perr := nb.Pegged(pos)
		require.NoError(t, perr)
		assert.Equal(t, want, pegged, "pos=%d", pos)
	}
	assert.Equal(t, 13, nb.PegCount())

	// The input board is untouched.
	pegged, _ := b.Pegged(1)
	assert.True(t, pegged)

	// Replaying the identical move must now fail; source and jumped peg
	// are gone.
	_, err = nb.MakeMove(1, 4)
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestMakeMoveOccupiedDestination(t *testing.T) {
	b := New(5)
	// Every connected pair on a full board fails: no destination is empty.
	for pos := Position(1); pos <= b.MaxPos(); pos++ {
		for dest := range b.cells[pos].connections {
			_, err := b.MakeMove(pos, dest)
			assert.ErrorIs(t, err, ErrInvalidMove, "%d->%d", pos, dest)
		}
	}
}

func TestMakeMoveUnconnected(t *testing.T) {
	b := New(5)
	b, _ = b.RemovePeg(4)
	// 2 -> 4 is adjacent, not a jump.
	_, err := b.MakeMove(2, 4)
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestAnyMoveExists(t *testing.T) {
	b := New(5)
	b, _ = b.RemovePeg(4)
	assert.True(t, b.AnyMoveExists())

	// Strip the board down to a single peg; no move can exist wherever
	// that peg sits.
	for keep := Position(1); keep <= 15; keep++ {
		lone := New(5)
		for pos := Position(1); pos <= 15; pos++ {
			if pos == keep {
				continue
			}
			var err error
			lone, err = lone.RemovePeg(pos)
			require.NoError(t, err)
		}
		assert.Equal(t, 1, lone.PegCount())
		assert.False(t, lone.AnyMoveExists(), "keep=%d", keep)
	}
}

func TestSolvableOpening(t *testing.T) {
	// Known opening line for rows=5 starting empty at 4.
	b := New(5)
	b, err := b.RemovePeg(4)
	require.NoError(t, err)

	moves := []struct{ from, to Position }{
		{1, 4}, {6, 1}, {4, 6},
	}
	for _, m := range moves {
		_, ok := b.ValidMove(m.from, m.to)
		require.True(t, ok, "%d->%d should be valid", m.from, m.to)
		b, err = b.MakeMove(m.from, m.to)
		require.NoError(t, err)
	}
	assert.Equal(t, 11, b.PegCount())
}

func TestLetterMapping(t *testing.T) {
	l, err := PosToLetter(1)
	require.NoError(t, err)
	assert.Equal(t, 'a', l)
	l, err = PosToLetter(26)
	require.NoError(t, err)
	assert.Equal(t, 'z', l)
	_, err = PosToLetter(27)
	assert.ErrorIs(t, err, ErrOutOfRange)

	p, err := LetterToPos('d')
	require.NoError(t, err)
	assert.Equal(t, Position(4), p)
	_, err = LetterToPos('A')
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDisplayText(t *testing.T) {
	b := New(5)
	b, _ = b.RemovePeg(4)
	assert.Equal(t, "      a0", b.RowText(1))
	assert.Equal(t, "    b0 c0", b.RowText(2))
	assert.Equal(t, "   d- e0 f0", b.RowText(3))
	assert.Equal(t, " g0 h0 i0 j0", b.RowText(4))
	assert.Equal(t, "k0 l0 m0 n0 o0", b.RowText(5))
	assert.Equal(t,
		"      a0\n    b0 c0\n   d- e0 f0\n g0 h0 i0 j0\nk0 l0 m0 n0 o0\n",
		b.ToDisplayText())
}
