package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/pegthing/board"
	"github.com/domino14/pegthing/move"
)

func TestNewGameRejectsUnplayableRows(t *testing.T) {
	for _, rows := range []int{0, -1, -5} {
		_, err := NewGame(rows)
		assert.ErrorIs(t, err, ErrUnplayable, "rows=%d", rows)
	}
}

func TestRoundLifecycle(t *testing.T) {
	g, err := NewGame(5)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingHoleChoice, g.State())
	assert.NotEmpty(t, g.ID())

	// Moves are not accepted before the hole is chosen.
	err = g.PlayMove(move.New(1, 4))
	assert.Error(t, err)

	require.NoError(t, g.ChooseHole(4))
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 14, g.Score())

	// Choosing twice is an error.
	assert.Error(t, g.ChooseHole(1))

	require.NoError(t, g.PlayMove(move.New(1, 4)))
	assert.Equal(t, 13, g.Score())
	assert.Len(t, g.History(), 1)
	assert.Equal(t, "ad", g.History()[0].String())
}

func TestInvalidMoveLeavesGameUnchanged(t *testing.T) {
	g, err := NewGame(5)
	require.NoError(t, err)
	require.NoError(t, g.ChooseHole(4))
	before := g.Board()

	err = g.PlayMove(move.New(2, 4))
	assert.ErrorIs(t, err, board.ErrInvalidMove)
	assert.Same(t, before, g.Board())
	assert.Equal(t, StatePlaying, g.State())
	assert.Empty(t, g.History())
}

func TestTinyBoardEndsImmediately(t *testing.T) {
	// rows=2 has three pegs and no recordable connection, so removing any
	// peg ends the round on the spot.
	g, err := NewGame(2)
	require.NoError(t, err)
	require.NoError(t, g.ChooseHole(2))
	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, 2, g.Score())
}

func TestGameOverDetection(t *testing.T) {
	// Play the rows=3 board out. Empty at 1: the only opening jumps are
	// (4,1) and (6,1).
	g, err := NewGame(3)
	require.NoError(t, err)
	require.NoError(t, g.ChooseHole(1))
	require.True(t, g.Playing())

	require.NoError(t, g.PlayMove(move.New(4, 1))) // over 2
	require.True(t, g.Playing())
	require.NoError(t, g.PlayMove(move.New(6, 4))) // over 5
	require.True(t, g.Playing())
	require.NoError(t, g.PlayMove(move.New(1, 6))) // over 3
	assert.Equal(t, StateGameOver, g.State())
	assert.Equal(t, 2, g.Score())
}

func TestDisplayText(t *testing.T) {
	g, err := NewGame(5)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(g.ToDisplayText(), "Remove which peg?\n"))
	require.NoError(t, g.ChooseHole(4))
	txt := g.ToDisplayText()
	assert.Contains(t, txt, "d- e0 f0")
	assert.Contains(t, txt, "14 pegs left")
}
