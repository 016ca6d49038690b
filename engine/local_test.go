package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/nim"
	"mcts/searcher"
	"mcts/tictactoe"
)

// scriptedAgent replays fixed moves and fails once they run out.
type scriptedAgent struct {
	moves []game.Move
	err   error
}

func (a *scriptedAgent) FindMove(context.Context, game.State) (game.Move, metrics.SearchMetric, error) {
	if a.err != nil {
		return nil, metrics.SearchMetric{}, a.err
	}
	if len(a.moves) == 0 {
		return nil, metrics.SearchMetric{}, errors.New("out of moves")
	}
	move := a.moves[0]
	a.moves = a.moves[1:]
	return move, metrics.SearchMetric{Iterations: 1}, nil
}

func TestRun(t *testing.T) {
	t.Run("random agents finish the game", func(t *testing.T) {
		e := New(nim.New(), NewRandomAgent(1), NewRandomAgent(2))

		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.True(t, result.Decided)
		require.True(t, result.Final.IsTerminal())
		require.NotEqual(t, game.None, result.Winner)
		require.Equal(t, result.Winner, result.Game.Winner)
		require.Equal(t, len(result.Moves), result.Game.TotalMoves)
		require.Equal(t, game.First, result.Moves[0].Player)
	})

	t.Run("scripted game", func(t *testing.T) {
		first := &scriptedAgent{moves: []game.Move{nim.Move{Actor: game.First, Pile: 0, Count: 2}}}
		second := &scriptedAgent{moves: []game.Move{nim.Move{Actor: game.Second, Pile: 1, Count: 1}}}
		var updates []Update
		e := New(nim.New(2, 1), first, second).OnMove(func(u Update) { updates = append(updates, u) })

		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, game.First, result.Winner, "The second player took the last item")
		require.Len(t, updates, 2)
		require.Equal(t, 2, updates[1].Step)
		require.Equal(t, game.Move(nim.Move{Actor: game.Second, Pile: 1, Count: 1}), updates[1].Move)
		require.True(t, updates[1].State.IsTerminal())
	})

	t.Run("turn cap", func(t *testing.T) {
		e := New(nim.New(5, 5, 5), NewRandomAgent(1), NewRandomAgent(2)).SetMaxTurns(2)

		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.False(t, result.Decided)
		require.False(t, result.Final.IsTerminal())
		require.Len(t, result.Moves, 2)
	})

	t.Run("draw", func(t *testing.T) {
		g, err := tictactoe.FromPosition("X O X\nX O O\nO X .")
		require.NoError(t, err)

		result, err := New(g, NewRandomAgent(1), NewRandomAgent(2)).Run(context.Background())
		require.NoError(t, err)
		require.False(t, result.Decided)
		require.Equal(t, game.None, result.Winner)
		require.True(t, result.Final.IsTerminal())
	})

	t.Run("illegal move", func(t *testing.T) {
		cheat := &scriptedAgent{moves: []game.Move{nim.Move{Actor: game.First, Pile: 0, Count: 9}}}

		_, err := New(nim.New(), cheat, NewRandomAgent(1)).Run(context.Background())
		require.True(t, game.IsInvalidMove(err))
	})

	t.Run("agent failure", func(t *testing.T) {
		boom := errors.New("boom")

		_, err := New(nim.New(), &scriptedAgent{err: boom}, NewRandomAgent(1)).Run(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := New(nim.New(), NewRandomAgent(1), NewRandomAgent(2)).Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, result.Moves)
	})

	t.Run("needs two agents", func(t *testing.T) {
		require.Panics(t, func() { New(nim.New(), NewRandomAgent(1)) })
	})
}

func TestMCTSAgent(t *testing.T) {
	t.Run("plays a legal move with metrics", func(t *testing.T) {
		g := nim.New()
		agent := NewMCTSAgent(g.Opener(), 200, 1, searcher.WithPolicies(nim.Policies()))

		move, search, err := agent.FindMove(context.Background(), g.Start())
		require.NoError(t, err)
		require.Contains(t, g.Start().Moves(game.First), move)
		require.Equal(t, 200, search.Iterations)
		require.Positive(t, search.TreeSize)
	})

	t.Run("no iterations", func(t *testing.T) {
		g := nim.New()
		_, _, err := NewMCTSAgent(g.Opener(), 0, 1).FindMove(context.Background(), g.Start())
		require.ErrorIs(t, err, searcher.ErrNoExpansion)
	})

	t.Run("against a random agent", func(t *testing.T) {
		g := tictactoe.New()
		e := New(g, NewMCTSAgent(g.Opener(), 100, 1, searcher.WithPolicies(tictactoe.Policies())), NewRandomAgent(2))

		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.True(t, result.Final.IsTerminal())
		require.Equal(t, 100, result.Moves[0].Iterations)
		require.Zero(t, result.Moves[1].Iterations)
	})
}
