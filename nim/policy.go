package nim

import (
	"golang.org/x/exp/rand"

	"mcts/game"
	"mcts/searcher"
	"mcts/utils"
)

// Policies returns the strategic expansion and cautious rollout pair.
func Policies() searcher.Policies {
	return searcher.Policies{
		Expansion: StrategicExpansion,
		Default:   CautiousRollout,
	}
}

// StrategicMove returns a move that leaves the opponent in a lost misère
// position, if one exists. While two or more piles hold more than one item
// that is the normal play move to nim-sum zero; otherwise the mover leaves an
// odd number of single-item piles.
func StrategicMove(s State) (Move, bool) {
	big, ones := -1, 0
	bigCount := 0
	for i, pile := range s.piles {
		switch {
		case pile > 1:
			big = i
			bigCount++
		case pile == 1:
			ones++
		}
	}

	switch {
	case bigCount == 0:
		if ones == 0 || ones%2 == 1 {
			return Move{}, false
		}
		for i, pile := range s.piles {
			if pile == 1 {
				return Move{Actor: s.player, Pile: i, Count: 1}, true
			}
		}
	case bigCount == 1:
		count := s.piles[big] // Empty the pile when the ones are already odd
		if ones%2 == 0 {
			count--
		}
		return Move{Actor: s.player, Pile: big, Count: count}, true
	}

	sum := s.NimSum()
	if sum == 0 {
		return Move{}, false
	}
	for i, pile := range s.piles {
		if target := pile ^ sum; target < pile {
			return Move{Actor: s.player, Pile: i, Count: pile - target}, true
		}
	}
	return Move{}, false
}

// StrategicExpansion expands the strategic move first and falls back to a
// uniform pick among the untried moves.
func StrategicExpansion(state game.State, untried []game.Move, rng *rand.Rand) game.Move {
	if s, ok := state.(State); ok {
		if move, ok := StrategicMove(s); ok && utils.Contains(untried, game.Move(move)) {
			return move
		}
	}
	return searcher.UniformExpansion(state, untried, rng)
}

// CautiousRollout never takes the last item while any other move exists.
func CautiousRollout(state game.State, moves []game.Move, rng *rand.Rand) game.Move {
	if s, ok := state.(State); ok {
		remaining := s.Remaining()
		safe := utils.Filter(moves, func(m game.Move) bool {
			mv, ok := m.(Move)
			return ok && mv.Count < remaining
		})
		if len(safe) > 0 {
			return safe[rng.Intn(len(safe))]
		}
	}
	return searcher.UniformRollout(state, moves, rng)
}
