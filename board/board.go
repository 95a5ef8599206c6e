// Package board models the triangular peg-solitaire board: a fixed set of
// positions, the jump-connectivity graph between them, and the occupancy
// state. Boards are values; every update returns a new board and leaves the
// receiver untouched.
package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/pegthing/triangle"
)

// Position identifies one hole on the board. Positions are assigned
// row-major starting from 1 at the apex; row r spans the triangular-number
// range (T(r-1), T(r)].
type Position int

var (
	ErrOutOfRange  = errors.New("position out of range")
	ErrInvalidMove = errors.New("invalid move")
)

// A Cell is one hole: whether a peg sits in it, and the jump graph entry
// for it. connections maps a landing destination to the position that would
// be jumped over to get there. The map is built once in New and never
// mutated afterwards; only the pegged flag changes during play.
type Cell struct {
	pegged      bool
	connections map[Position]Position
}

// Board is the full board for one round. The cells slice is 1-indexed
// (index 0 is unused) so positions can index it directly.
type Board struct {
	rows   int
	maxPos Position
	cells  []Cell
}

// New builds a board of the given number of rows with every position pegged.
// The three connection rules (right, down-left, down-right) are attempted
// for every position; a rule only takes when its landing destination is on
// the board, and each taken rule is recorded in both directions. rows <= 0
// yields an empty board, which is degenerate but not an error.
func New(rows int) *Board {
	if rows < 0 {
		rows = 0
	}
	maxPos := Position(triangle.Nth(rows))
	b := &Board{
		rows:   rows,
		maxPos: maxPos,
		cells:  make([]Cell, maxPos+1),
	}
	for pos := Position(1); pos <= maxPos; pos++ {
		b.cells[pos].pegged = true
	}
	nconns := 0
	for pos := Position(1); pos <= maxPos; pos++ {
		// Right: blocked when pos or its right neighbor closes a row,
		// since the jump would wrap around the row boundary.
		if !triangle.IsTriangular(int(pos)) && !triangle.IsTriangular(int(pos)+1) {
			nconns += b.connect(pos, pos+1, pos+2)
		}
		r := Position(triangle.RowOf(int(pos)))
		// Down-left: neighbor one row below, shifted by the row length.
		nconns += b.connect(pos, pos+r, pos+2*r+1)
		// Down-right.
		nconns += b.connect(pos, pos+r+1, pos+2*r+3)
	}
	log.Debug().Int("rows", rows).Int("positions", int(maxPos)).
		Int("connections", nconns).Msg("built board")
	return b
}

// connect records the jump (pos over jumped to dest) in both directions.
// Triples that land off the board are dropped entirely.
func (b *Board) connect(pos, jumped, dest Position) int {
	if dest > b.maxPos {
		return 0
	}
	if b.cells[pos].connections == nil {
		b.cells[pos].connections = make(map[Position]Position, 3)
	}
	if b.cells[dest].connections == nil {
		b.cells[dest].connections = make(map[Position]Position, 3)
	}
	b.cells[pos].connections[dest] = jumped
	b.cells[dest].connections[pos] = jumped
	return 2
}

// Rows returns the row count the board was built with.
func (b *Board) Rows() int {
	return b.rows
}

// MaxPos returns the highest valid position; 0 for a degenerate board.
func (b *Board) MaxPos() Position {
	return b.maxPos
}

func (b *Board) onBoard(pos Position) bool {
	return pos >= 1 && pos <= b.maxPos
}

// Pegged reports whether a peg occupies pos.
func (b *Board) Pegged(pos Position) (bool, error) {
	if !b.onBoard(pos) {
		return false, fmt.Errorf("%w: %d (board has %d positions)",
			ErrOutOfRange, pos, b.maxPos)
	}
	return b.cells[pos].pegged, nil
}

// PegCount returns the number of pegs on the board. At game over this is
// the score.
func (b *Board) PegCount() int {
	n := 0
	for pos := Position(1); pos <= b.maxPos; pos++ {
		if b.cells[pos].pegged {
			n++
		}
	}
	return n
}

// withPeg returns a copy of the board with the pegged flag at pos set.
// The cells slice is copied; connection maps are shared, which is safe
// because they are immutable after New.
func (b *Board) withPeg(pos Position, pegged bool) (*Board, error) {
	if !b.onBoard(pos) {
		return nil, fmt.Errorf("%w: %d (board has %d positions)",
			ErrOutOfRange, pos, b.maxPos)
	}
	nb := &Board{
		rows:   b.rows,
		maxPos: b.maxPos,
		cells:  make([]Cell, len(b.cells)),
	}
	copy(nb.cells, b.cells)
	nb.cells[pos].pegged = pegged
	return nb, nil
}

// RemovePeg returns a new board with pos emptied.
func (b *Board) RemovePeg(pos Position) (*Board, error) {
	return b.withPeg(pos, false)
}

// PlacePeg returns a new board with pos pegged.
func (b *Board) PlacePeg(pos Position) (*Board, error) {
	return b.withPeg(pos, true)
}

// ValidMoves returns the jumps currently legal from pos, as a map from
// landing destination to the peg that would be jumped. The result is empty
// (never an error) when pos is off the board, unpegged, or has no legal
// jump under current occupancy.
func (b *Board) ValidMoves(pos Position) map[Position]Position {
	moves := map[Position]Position{}
	if !b.onBoard(pos) || !b.cells[pos].pegged {
		return moves
	}
	for dest, jumped := range b.cells[pos].connections {
		if !b.cells[dest].pegged && b.cells[jumped].pegged {
			moves[dest] = jumped
		}
	}
	return moves
}

// ValidMove reports whether jumping from p1 to p2 is legal right now, and
// if so which peg gets jumped.
func (b *Board) ValidMove(p1, p2 Position) (Position, bool) {
	jumped, ok := b.ValidMoves(p1)[p2]
	return jumped, ok
}

// AnyMoveExists reports whether any pegged position anywhere on the board
// still has a legal jump. The round only ends when this is false.
func (b *Board) AnyMoveExists() bool {
	for pos := Position(1); pos <= b.maxPos; pos++ {
		if b.cells[pos].pegged && len(b.ValidMoves(pos)) > 0 {
			return true
		}
	}
	return false
}

// MakeMove validates and applies the jump from p1 to p2. On success it
// returns a new board with p1 and the jumped peg emptied and p2 pegged; on
// failure it returns ErrInvalidMove and the receiver is untouched. The
// caller decides whether to reprompt; no retry happens here.
func (b *Board) MakeMove(p1, p2 Position) (*Board, error) {
	jumped, ok := b.ValidMove(p1, p2)
	if !ok {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidMove, p1, p2)
	}
	nb, err := b.RemovePeg(jumped)
	if err != nil {
		return nil, err
	}
	nb, err = nb.RemovePeg(p1)
	if err != nil {
		return nil, err
	}
	return nb.PlacePeg(p2)
}
