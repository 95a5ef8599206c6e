// Package move holds the jump-move value type and the letter-pair input
// format the shell uses ("ad" means jump the peg at a to the hole at d).
package move

import (
	"fmt"
	"strings"

	"github.com/domino14/pegthing/board"
)

// Move is a single requested jump. It carries no legality information;
// the board decides that at application time.
type Move struct {
	from board.Position
	to   board.Position
}

// New makes a move from p1 to p2.
func New(from, to board.Position) Move {
	return Move{from: from, to: to}
}

func (m Move) From() board.Position {
	return m.from
}

func (m Move) To() board.Position {
	return m.to
}

// String renders the move in the same letter-pair form it is entered in,
// falling back to numeric positions past the letter range.
func (m Move) String() string {
	f, ferr := board.PosToLetter(m.from)
	t, terr := board.PosToLetter(m.to)
	if ferr != nil || terr != nil {
		return fmt.Sprintf("%d%d", m.from, m.to)
	}
	return string(f) + string(t)
}

// Parse reads a two-letter move string, e.g. "ad". Whitespace around the
// pair is ignored; anything else is an error for the caller to show.
func Parse(s string) (Move, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) != 2 {
		return Move{}, fmt.Errorf("a move is two letters, like ad; got %q", s)
	}
	from, err := board.LetterToPos(runes[0])
	if err != nil {
		return Move{}, err
	}
	to, err := board.LetterToPos(runes[1])
	if err != nil {
		return Move{}, err
	}
	return Move{from: from, to: to}, nil
}

// ParsePosition reads a single position letter, used for the initial
// empty-hole choice.
func ParsePosition(s string) (board.Position, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("a position is one letter, like d; got %q", s)
	}
	return board.LetterToPos(runes[0])
}
