package player

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"mcts/game"
	"mcts/nim"
	"mcts/tictactoe"
)

func TestHuman(t *testing.T) {
	t.Run("retries until the move is legal", func(t *testing.T) {
		g := nim.New()
		var out bytes.Buffer
		h := NewHuman(g, strings.NewReader("banana\n1 4\n1 3\n"), &out, "pile count")

		move, _, err := h.FindMove(context.Background(), g.Start())
		require.NoError(t, err)
		require.Equal(t, game.Move(nim.Move{Actor: game.First, Pile: 0, Count: 3}), move)
		require.Contains(t, out.String(), "expected \"<pile> <count>\"")
		require.Contains(t, out.String(), "cannot remove 4 pieces from pile 1")
		require.Equal(t, 3, strings.Count(out.String(), "enter your move"))
	})

	t.Run("last line without newline", func(t *testing.T) {
		g := tictactoe.New()
		h := NewHuman(g, strings.NewReader("2 2"), io.Discard, "row column")

		move, _, err := h.FindMove(context.Background(), g.Start())
		require.NoError(t, err)
		require.Equal(t, game.Move(tictactoe.Move{Actor: game.First, Cell: 4}), move)
	})

	t.Run("input exhausted", func(t *testing.T) {
		g := nim.New()
		h := NewHuman(g, strings.NewReader("0 0\n"), io.Discard, "pile count")

		_, _, err := h.FindMove(context.Background(), g.Start())
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		g := nim.New()

		_, _, err := NewHuman(g, strings.NewReader("1 1\n"), io.Discard, "").FindMove(ctx, g.Start())
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRender(t *testing.T) {
	out := termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii))

	t.Run("piles", func(t *testing.T) {
		got := Render(out, nim.NewState([]int{3, 0}, game.Second))
		require.Contains(t, got, "pile 1: |||")
		require.Contains(t, got, "(0)")
		require.Contains(t, got, "player2 to move")
	})

	t.Run("board", func(t *testing.T) {
		s, err := tictactoe.ParsePosition("X . O\nX O .\nX . O")
		require.NoError(t, err)

		got := Render(out, s)
		require.Contains(t, got, "1   X . O")
		require.Contains(t, got, "player1 wins")
	})

	t.Run("draw", func(t *testing.T) {
		s, err := tictactoe.ParsePosition("X O X\nX O O\nO X X")
		require.NoError(t, err)
		require.Contains(t, Render(out, s), "draw")
	})

	t.Run("print", func(t *testing.T) {
		var buf bytes.Buffer
		Print(&buf, nim.NewState([]int{1}, game.First))
		require.Equal(t, "pile 1: |            (1)\nplayer1 to move\n", buf.String())
	})
}
