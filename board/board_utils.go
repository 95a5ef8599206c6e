package board

import (
	"fmt"
	"strings"

	"github.com/domino14/pegthing/triangle"
)

// MaxLetterPositions is how many positions the single-letter input scheme
// can address. Boards larger than this (rows > 6) would need an extended
// symbol set; the shell caps row counts instead.
const MaxLetterPositions = 26

// PosToLetter returns the display letter for a position ('a' for 1). It
// returns an error for positions the letter scheme cannot represent.
func PosToLetter(pos Position) (rune, error) {
	if pos < 1 || pos > MaxLetterPositions {
		return 0, fmt.Errorf("%w: %d has no letter", ErrOutOfRange, pos)
	}
	return rune('a' + pos - 1), nil
}

// LetterToPos is the inverse of PosToLetter.
func LetterToPos(letter rune) (Position, error) {
	if letter < 'a' || letter > 'z' {
		return 0, fmt.Errorf("%w: %q is not a position letter", ErrOutOfRange, letter)
	}
	return Position(letter - 'a' + 1), nil
}

// RowText renders one row of the board: left padding so the triangle stays
// centered, then each position as its letter followed by 0 (pegged) or -
// (empty), single-space separated.
func (b *Board) RowText(row int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", (b.rows-row)*3/2))
	first := Position(triangle.Nth(row-1)) + 1
	last := Position(triangle.Nth(row))
	for pos := first; pos <= last; pos++ {
		if pos > first {
			sb.WriteByte(' ')
		}
		letter, err := PosToLetter(pos)
		if err != nil {
			letter = '?'
		}
		sb.WriteRune(letter)
		if b.cells[pos].pegged {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// ToDisplayText turns the whole board into a displayable string, one row
// per line.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for row := 1; row <= b.rows; row++ {
		sb.WriteString(b.RowText(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
