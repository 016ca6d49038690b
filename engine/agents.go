package engine

import (
	"context"

	"golang.org/x/exp/rand"

	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/searcher"
)

// MCTSAgent searches a fresh tree from the current position on every turn.
type MCTSAgent struct {
	opener     game.Player
	iterations int
	rng        *rand.Rand
	options    []searcher.Option
}

var _ Agent = &MCTSAgent{}

// NewMCTSAgent creates an agent running iterations per move. All of its
// searches draw from one generator seeded with seed.
func NewMCTSAgent(opener game.Player, iterations int, seed uint64, options ...searcher.Option) *MCTSAgent {
	return &MCTSAgent{
		opener:     opener,
		iterations: iterations,
		rng:        rand.New(rand.NewSource(seed)),
		options:    options,
	}
}

func (a *MCTSAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	tree := searcher.NewTree(state, a.opener)
	options := append([]searcher.Option{searcher.WithMetrics()}, a.options...)
	m := searcher.NewMCTS(tree, append(options, searcher.WithRand(a.rng))...)

	best, err := m.RunContext(ctx, a.iterations)
	if err != nil {
		return nil, m.Metrics(), err
	}
	return tree.Move(best), m.Metrics(), nil
}

// RandomAgent plays uniformly at random among the legal moves.
type RandomAgent struct {
	rng *rand.Rand
}

var _ Agent = &RandomAgent{}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(_ context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.Moves(state.Player())
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, game.ErrNoLegalMoves
	}
	return searcher.UniformRollout(state, moves, a.rng), metrics.SearchMetric{}, nil
}
