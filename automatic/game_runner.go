// Package automatic plays rounds of peg solitaire unattended: pick a random
// starting hole, then keep making uniformly random legal jumps until none
// remain. Useful for sanity-checking the board wiring and for getting a feel
// for the score distribution of blind play. It samples; it never searches.
package automatic

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/pegthing/board"
	"github.com/domino14/pegthing/game"
	"github.com/domino14/pegthing/move"
)

// GameRunner is the master struct for one autoplay worker. Not safe for
// concurrent use; each worker gets its own.
type GameRunner struct {
	rows    int
	rng     *frand.RNG
	logchan chan string
	game    *game.Game
}

// NewGameRunner instantiates a runner for boards of the given rows. logchan
// may be nil; when set, one CSV line per finished round is sent on it.
func NewGameRunner(rows int, logchan chan string) *GameRunner {
	return &GameRunner{rows: rows, rng: frand.New(), logchan: logchan}
}

// Result is the outcome of one finished round.
type Result struct {
	GameID string
	Hole   board.Position
	Moves  int
	Score  int
}

// Game returns the most recently played round, for inspection.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayRound plays one full round with random choices and returns its
// outcome.
func (r *GameRunner) PlayRound() (Result, error) {
	g, err := game.NewGame(r.rows)
	if err != nil {
		return Result{}, err
	}
	r.game = g
	hole := board.Position(r.rng.Intn(int(g.Board().MaxPos())) + 1)
	if err := g.ChooseHole(hole); err != nil {
		return Result{}, err
	}
	for g.Playing() {
		ms := allValidMoves(g.Board())
		if len(ms) == 0 {
			return Result{}, fmt.Errorf("game %s claims to be playing with no moves", g.ID())
		}
		if err := g.PlayMove(ms[r.rng.Intn(len(ms))]); err != nil {
			return Result{}, err
		}
	}
	res := Result{
		GameID: g.ID(),
		Hole:   hole,
		Moves:  len(g.History()),
		Score:  g.Score(),
	}
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%s,%d,%d,%d\n", res.GameID, res.Hole, res.Moves, res.Score)
	}
	return res, nil
}

// allValidMoves flattens every legal jump on the board into a list we can
// sample from.
func allValidMoves(b *board.Board) []move.Move {
	var ms []move.Move
	for pos := board.Position(1); pos <= b.MaxPos(); pos++ {
		for dest := range b.ValidMoves(pos) {
			ms = append(ms, move.New(pos, dest))
		}
	}
	return ms
}
