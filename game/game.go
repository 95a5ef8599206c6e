// Package game runs a single round of peg solitaire: choose the starting
// empty hole, jump pegs until no jump remains, count what's left. The game
// owns a board value and swaps it wholesale on every successful move, so an
// invalid move can never leave a half-applied board behind.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/pegthing/board"
	"github.com/domino14/pegthing/move"
)

// PlayState is where in the round lifecycle the game is.
type PlayState int

const (
	// StateAwaitingHoleChoice is the start of a round, before the player
	// removes the first peg.
	StateAwaitingHoleChoice PlayState = iota
	StatePlaying
	StateGameOver
)

func (s PlayState) String() string {
	switch s {
	case StateAwaitingHoleChoice:
		return "awaiting-hole-choice"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// ErrUnplayable is returned for row counts that produce a board with no
// pegs to play.
var ErrUnplayable = errors.New("board is unplayable")

// Game is one round. A fresh Game is constructed per round; nothing is
// shared between rounds.
type Game struct {
	id      string
	board   *board.Board
	playing PlayState
	history []move.Move
}

// NewGame builds a full board of the given rows and waits for the
// empty-hole choice.
func NewGame(rows int) (*Game, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: %d rows", ErrUnplayable, rows)
	}
	g := &Game{
		id:      uuid.New().String(),
		board:   board.New(rows),
		playing: StateAwaitingHoleChoice,
	}
	log.Debug().Str("gid", g.id).Int("rows", rows).Msg("new game")
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

// Board returns the current board value. It is safe to hold on to; it will
// never change under the caller.
func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) State() PlayState {
	return g.playing
}

// Playing is true while the round still accepts moves.
func (g *Game) Playing() bool {
	return g.playing == StatePlaying
}

// History returns the moves played so far, in order.
func (g *Game) History() []move.Move {
	return g.history
}

// Score is the number of pegs remaining. Lower is better; 1 is a win.
func (g *Game) Score() int {
	return g.board.PegCount()
}

// ChooseHole removes the initial peg and starts play. If the resulting
// board has no legal jump at all (tiny boards), the round is immediately
// over.
func (g *Game) ChooseHole(pos board.Position) error {
	if g.playing != StateAwaitingHoleChoice {
		return errors.New("the empty hole has already been chosen")
	}
	nb, err := g.board.RemovePeg(pos)
	if err != nil {
		return err
	}
	g.board = nb
	g.playing = StatePlaying
	if !g.board.AnyMoveExists() {
		g.playing = StateGameOver
	}
	log.Debug().Str("gid", g.id).Int("hole", int(pos)).
		Stringer("state", g.playing).Msg("hole chosen")
	return nil
}

// PlayMove validates and applies one jump. An invalid move returns an error
// wrapping board.ErrInvalidMove and changes nothing; the caller reprompts.
// After a successful move the game is over as soon as no pegged position
// anywhere has a legal jump left.
func (g *Game) PlayMove(m move.Move) error {
	if g.playing != StatePlaying {
		return fmt.Errorf("cannot play a move in state %s", g.playing)
	}
	nb, err := g.board.MakeMove(m.From(), m.To())
	if err != nil {
		return err
	}
	g.board = nb
	g.history = append(g.history, m)
	if !g.board.AnyMoveExists() {
		g.playing = StateGameOver
		log.Debug().Str("gid", g.id).Int("score", g.Score()).Msg("game over")
	}
	return nil
}
