package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"mcts/experiments/metrics"
	"mcts/game"
)

// MoveParser turns console input into a move of the given player.
type MoveParser interface {
	ParseMove(player game.Player, input string) (game.Move, error)
}

// Human asks for moves on a console until a legal one is entered.
type Human struct {
	parser MoveParser
	in     *bufio.Reader
	out    *termenv.Output
	hint   string
}

func NewHuman(parser MoveParser, in io.Reader, out io.Writer, hint string) *Human {
	return &Human{
		parser: parser,
		in:     bufio.NewReader(in),
		out:    termenv.NewOutput(out),
		hint:   hint,
	}
}

func (h *Human) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	fmt.Fprint(h.out, Render(h.out, state))
	for {
		if err := ctx.Err(); err != nil {
			return nil, metrics.SearchMetric{}, err
		}

		fmt.Fprintf(h.out, "%v, enter your move (%s): ", state.Player(), h.hint)
		input, err := h.in.ReadString('\n')
		if err != nil && strings.TrimSpace(input) == "" {
			return nil, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
		}

		move, err := h.parser.ParseMove(state.Player(), input)
		if err == nil {
			_, err = state.Next(move)
		}
		if err != nil {
			fmt.Fprintln(h.out, h.out.String(err.Error()).Foreground(h.out.Color("1")))
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}
