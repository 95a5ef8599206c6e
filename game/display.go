package game

import (
	"fmt"
	"strings"
)

// ToDisplayText turns the current state of the round into a displayable
// string: the board, then a status line.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(g.board.ToDisplayText())
	switch g.playing {
	case StateAwaitingHoleChoice:
		sb.WriteString("Remove which peg?\n")
	case StatePlaying:
		sb.WriteString(fmt.Sprintf("%d pegs left. Your move.\n", g.Score()))
	case StateGameOver:
		sb.WriteString(fmt.Sprintf("Game over! %s\n", scoreLine(g.Score())))
	}
	return sb.String()
}

func scoreLine(pegs int) string {
	if pegs == 1 {
		return "1 peg left. Perfect game."
	}
	return fmt.Sprintf("%d pegs left.", pegs)
}
