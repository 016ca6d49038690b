package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"mcts/game"
	"mcts/searcher"
)

func TestPolicies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("expansion takes an immediate win", func(t *testing.T) {
		s := mustParse(t, "X X .\nO O .\n. . .")
		for i := 0; i < 10; i++ {
			require.Equal(t, game.Move(Move{Actor: game.First, Cell: 2}), WinFirstExpansion(s, s.Moves(game.First), rng))
		}
	})

	t.Run("expansion ignores tried wins", func(t *testing.T) {
		s := mustParse(t, "X X .\nO O .\n. . .")
		untried := []game.Move{Move{Actor: game.First, Cell: 6}, Move{Actor: game.First, Cell: 7}}
		require.Contains(t, untried, WinFirstExpansion(s, untried, rng))
	})

	t.Run("rollout wins before blocking", func(t *testing.T) {
		s := mustParse(t, "O O .\nX X .\nX . .")
		require.Equal(t, game.Move(Move{Actor: game.Second, Cell: 2}), WinBlockRollout(s, s.Moves(game.Second), rng))
	})

	t.Run("rollout blocks", func(t *testing.T) {
		s := mustParse(t, "X X .\n. O .\n. . .")
		for i := 0; i < 10; i++ {
			require.Equal(t, game.Move(Move{Actor: game.Second, Cell: 2}), WinBlockRollout(s, s.Moves(game.Second), rng))
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("credits the player to move", func(t *testing.T) {
		g, err := FromPosition("X X .\nO O .\n. . .")
		require.NoError(t, err)
		tree := searcher.NewGameTree(g)
		m := searcher.NewMCTS(tree, searcher.WithSeed(3), searcher.WithPolicies(Policies()))

		best, err := m.Run(300)
		require.NoError(t, err)
		require.Equal(t, tree.Root(), tree.Parent(best))

		win := tree.Children(tree.Root())[0]
		require.Equal(t, Move{Actor: game.First, Cell: 2}, tree.Move(win), "The winning cell is expanded first")
		require.True(t, tree.IsLeaf(win))
		require.Zero(t, tree.Wins(win), "O is to move at the decided board and never wins there")
		require.GreaterOrEqual(t, tree.Wins(tree.Root()), tree.Playouts(win))
	})

	t.Run("full tree from a nearly full board", func(t *testing.T) {
		g, err := FromPosition("X O X\nX O O\nO X .")
		require.NoError(t, err)
		tree := searcher.NewGameTree(g)

		best, err := searcher.NewMCTS(tree, searcher.WithSeed(1)).Run(5)
		require.NoError(t, err)
		require.Len(t, tree.Children(tree.Root()), 1)
		require.True(t, tree.IsLeaf(best))
		require.Equal(t, 5, tree.Playouts(best))
	})
}
