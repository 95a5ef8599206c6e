package shell

import "io"

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new [rows] - start a round (rows defaults to the -rows setting, max 6)\n")
	io.WriteString(w, "<letter> - remove the peg at that position to open the round\n")
	io.WriteString(w, "<letter><letter> - jump the first peg to the second hole, e.g. ad\n")
	io.WriteString(w, "moves <letter> - list the legal jumps from a position\n")
	io.WriteString(w, "show - redraw the board\n")
	io.WriteString(w, "score - pegs remaining and round state\n")
	io.WriteString(w, "autoplay <n> [threads] - play n random rounds and show the score spread\n")
	io.WriteString(w, "help - this text\n")
	io.WriteString(w, "bye, exit - quit\n")
}
