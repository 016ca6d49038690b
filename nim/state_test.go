package nim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"mcts/game"
)

func TestState(t *testing.T) {
	t.Run("removing from a pile", func(t *testing.T) {
		s := NewState([]int{3, 6, 9}, game.First)

		next, err := s.Next(Move{Actor: game.First, Pile: 0, Count: 3})
		require.NoError(t, err)
		if diff := cmp.Diff([]int{0, 6, 9}, next.(State).Piles()); diff != "" {
			t.Errorf("piles mismatch (-want +got):\n%s", diff)
		}
		require.False(t, next.IsTerminal())
		require.Equal(t, game.Second, next.Player(), "Turns alternate")
		require.Equal(t, []int{3, 6, 9}, s.Piles(), "Next must not modify the receiver")
	})

	t.Run("empty table is terminal", func(t *testing.T) {
		s := NewState([]int{0, 0, 0}, game.Second)

		require.True(t, s.IsTerminal())
		winner, ok := s.Winner()
		require.True(t, ok)
		require.Equal(t, game.Second, winner, "The player facing the empty table did not take the last item")
		require.Empty(t, s.Moves(s.Player()))
	})

	t.Run("taking the last item loses", func(t *testing.T) {
		s := NewState([]int{0, 1, 0}, game.First)

		next, err := s.Next(Move{Actor: game.First, Pile: 1, Count: 1})
		require.NoError(t, err)
		winner, ok := next.Winner()
		require.True(t, ok)
		require.Equal(t, game.Second, winner)
	})

	t.Run("first takes the last item and second wins", func(t *testing.T) {
		next, err := NewState([]int{1}, game.First).Next(Move{Actor: game.First, Pile: 0, Count: 1})
		require.NoError(t, err)
		winner, ok := next.Winner()
		require.True(t, ok)
		require.Equal(t, game.Second, winner)
	})

	t.Run("no winner while items remain", func(t *testing.T) {
		winner, ok := NewState([]int{1}, game.First).Winner()
		require.False(t, ok)
		require.Equal(t, game.None, winner)
	})

	t.Run("moves", func(t *testing.T) {
		s := NewState([]int{3, 4, 5}, game.First)

		moves := s.Moves(game.First)
		require.Len(t, moves, 12)
		for _, m := range moves {
			require.Equal(t, game.First, m.Player())
		}
		require.Equal(t, Move{Actor: game.First, Pile: 0, Count: 1}, moves[0])
		require.Equal(t, Move{Actor: game.First, Pile: 2, Count: 5}, moves[11])
	})

	t.Run("nim sum", func(t *testing.T) {
		require.Equal(t, 12, NewState([]int{3, 6, 9}, game.First).NimSum())
		require.Equal(t, 0, NewState([]int{1, 2, 3}, game.First).NimSum())
	})
}

func TestStateRejectsIllegalMoves(t *testing.T) {
	s := NewState([]int{3, 6, 9}, game.First)

	tests := []struct {
		name string
		move game.Move
	}{
		{"nothing removed", Move{Actor: game.First, Pile: 0, Count: 0}},
		{"negative count", Move{Actor: game.First, Pile: 0, Count: -1}},
		{"more than the pile holds", Move{Actor: game.First, Pile: 0, Count: 4}},
		{"missing pile", Move{Actor: game.First, Pile: 3, Count: 1}},
		{"negative pile", Move{Actor: game.First, Pile: -1, Count: 1}},
		{"out of turn", Move{Actor: game.Second, Pile: 1, Count: 1}},
		{"foreign move", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := s.Next(tt.move)
			require.Error(t, err)
			require.True(t, game.IsInvalidMove(err))
			require.Nil(t, next)
		})
	}
}
