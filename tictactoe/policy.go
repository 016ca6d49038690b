package tictactoe

import (
	"golang.org/x/exp/rand"

	"mcts/game"
	"mcts/searcher"
)

func Policies() searcher.Policies {
	return searcher.Policies{
		Expansion: WinFirstExpansion,
		Default:   WinBlockRollout,
	}
}

// winningMove returns the first of moves that completes a line for who.
func winningMove(b Board, who game.Player, moves []game.Move) (game.Move, bool) {
	for _, move := range moves {
		mv, ok := move.(Move)
		if !ok || b[mv.Cell] != game.None {
			continue
		}
		b[mv.Cell] = who
		_, won := b.Line()
		b[mv.Cell] = game.None
		if won {
			return move, true
		}
	}
	return nil, false
}

// WinFirstExpansion expands an untried move that wins on the spot, if any.
func WinFirstExpansion(state game.State, untried []game.Move, rng *rand.Rand) game.Move {
	if s, ok := state.(State); ok {
		if move, ok := winningMove(s.board, s.player, untried); ok {
			return move
		}
	}
	return searcher.UniformExpansion(state, untried, rng)
}

// WinBlockRollout plays a winning move, else blocks the opponent's winning
// cell, else a random move.
func WinBlockRollout(state game.State, moves []game.Move, rng *rand.Rand) game.Move {
	if s, ok := state.(State); ok {
		if move, ok := winningMove(s.board, s.player, moves); ok {
			return move
		}
		if move, ok := winningMove(s.board, s.player.Opponent(), moves); ok {
			return move
		}
	}
	return searcher.UniformRollout(state, moves, rng)
}
