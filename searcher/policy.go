package searcher

import (
	"golang.org/x/exp/rand"

	"mcts/game"
)

// ExpansionPolicy picks which untried move a node is expanded with. untried is
// never empty.
type ExpansionPolicy func(state game.State, untried []game.Move, rng *rand.Rand) game.Move

// DefaultPolicy picks the next rollout move. moves is never empty.
type DefaultPolicy func(state game.State, moves []game.Move, rng *rand.Rand) game.Move

// Policies pairs the expansion and rollout strategies a game supplies.
type Policies struct {
	Expansion ExpansionPolicy
	Default   DefaultPolicy
}

// UniformPolicies is the baseline every game supports.
var UniformPolicies = Policies{
	Expansion: UniformExpansion,
	Default:   UniformRollout,
}

// UniformExpansion picks uniformly among the untried moves.
func UniformExpansion(_ game.State, untried []game.Move, rng *rand.Rand) game.Move {
	return untried[rng.Intn(len(untried))]
}

// UniformRollout picks uniformly among the legal moves.
func UniformRollout(_ game.State, moves []game.Move, rng *rand.Rand) game.Move {
	return moves[rng.Intn(len(moves))]
}
