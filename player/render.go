package player

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"mcts/game"
	"mcts/nim"
	"mcts/tictactoe"
)

// Console ANSI colours of the two players.
var colors = map[game.Player]string{
	game.First:  "4", // blue
	game.Second: "1", // red
}

func mark(out *termenv.Output, p game.Player, s string) string {
	color, ok := colors[p]
	if !ok {
		return s
	}
	return out.String(s).Foreground(out.Color(color)).Bold().String()
}

// Render draws state for the console. Unknown games fall back to their
// fmt representation.
func Render(out *termenv.Output, state game.State) string {
	var sb strings.Builder
	switch s := state.(type) {
	case nim.State:
		for i, pile := range s.Piles() {
			fmt.Fprintf(&sb, "pile %d: %-12s (%d)\n", i+1, strings.Repeat("|", pile), pile)
		}
	case tictactoe.State:
		board := s.Board()
		sb.WriteString("    1 2 3\n")
		for row := 0; row < tictactoe.Size; row++ {
			fmt.Fprintf(&sb, "%d  ", row+1)
			for col := 0; col < tictactoe.Size; col++ {
				p := board[row*tictactoe.Size+col]
				sb.WriteString(" " + mark(out, p, tictactoe.Symbol(p)))
			}
			sb.WriteByte('\n')
		}
	default:
		fmt.Fprintf(&sb, "%v\n", state)
	}

	if state.IsTerminal() {
		if winner, ok := state.Winner(); ok {
			sb.WriteString(mark(out, winner, fmt.Sprintf("%v wins", winner)) + "\n")
		} else {
			sb.WriteString("draw\n")
		}
	} else {
		sb.WriteString(mark(out, state.Player(), fmt.Sprintf("%v to move", state.Player())) + "\n")
	}
	return sb.String()
}

// Print renders state to w, coloured when w is a terminal.
func Print(w io.Writer, state game.State) {
	out := termenv.NewOutput(w)
	fmt.Fprint(out, Render(out, state))
}
