package nim

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"mcts/game"
)

func TestStrategicMove(t *testing.T) {
	tests := []struct {
		name  string
		piles []int
		want  Move
		ok    bool
	}{
		{"nim sum to zero", []int{3, 6, 9}, Move{Actor: game.First, Pile: 2, Count: 4}, true},
		{"already zero", []int{1, 2, 3}, Move{}, false},
		{"even singles", []int{1, 0, 1}, Move{Actor: game.First, Pile: 0, Count: 1}, true},
		{"odd singles", []int{1, 1, 1}, Move{}, false},
		{"one big pile with even singles", []int{3, 1, 1}, Move{Actor: game.First, Pile: 0, Count: 2}, true},
		{"one big pile with odd singles", []int{3, 1}, Move{Actor: game.First, Pile: 0, Count: 3}, true},
		{"empty", []int{0, 0}, Move{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, ok := StrategicMove(NewState(tt.piles, game.First))
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, move)
		})
	}
}

func TestStrategicExpansion(t *testing.T) {
	s := NewState([]int{3, 6, 9}, game.First)
	rng := rand.New(rand.NewSource(1))
	strategic := Move{Actor: game.First, Pile: 2, Count: 4}

	t.Run("prefers the strategic move", func(t *testing.T) {
		require.Equal(t, game.Move(strategic), StrategicExpansion(s, s.Moves(game.First), rng))
	})

	t.Run("falls back to the untried moves", func(t *testing.T) {
		untried := []game.Move{
			Move{Actor: game.First, Pile: 0, Count: 1},
			Move{Actor: game.First, Pile: 1, Count: 1},
		}
		for i := 0; i < 20; i++ {
			require.Contains(t, untried, StrategicExpansion(s, untried, rng))
		}
	})
}

func TestCautiousRollout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("never takes the last item when it can avoid it", func(t *testing.T) {
		s := NewState([]int{0, 0, 2}, game.First)
		for i := 0; i < 20; i++ {
			require.Equal(t, game.Move(Move{Actor: game.First, Pile: 2, Count: 1}), CautiousRollout(s, s.Moves(game.First), rng))
		}
	})

	t.Run("forced to take the last item", func(t *testing.T) {
		s := NewState([]int{0, 1}, game.Second)
		require.Equal(t, game.Move(Move{Actor: game.Second, Pile: 1, Count: 1}), CautiousRollout(s, s.Moves(game.Second), rng))
	})
}
