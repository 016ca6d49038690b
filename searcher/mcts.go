package searcher

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"mcts/experiments/metrics"
	"mcts/game"
)

type MCTS struct {
	tree        *Tree
	rng         *rand.Rand
	exploration float64
	expansion   ExpansionPolicy
	rollout     DefaultPolicy
	criterion   Criterion
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

// NewMCTS binds a search engine to tree. Without options it explores with
// C = sqrt(2), uses the uniform policies, picks the child with most wins and
// seeds itself from the clock.
func NewMCTS(tree *Tree, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		tree:        tree,
		exploration: DefaultExploration,
		expansion:   UniformExpansion,
		rollout:     UniformRollout,
		criterion:   MostWins,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(timeSeed()))
	}
	return m
}

func (m *MCTS) Tree() *Tree { return m.tree }

// Metrics returns the statistics of the last completed search.
func (m *MCTS) Metrics() metrics.SearchMetric { return m.last }

// Run performs exactly iterations select/expand/simulate/backpropagate cycles
// and returns the recommended child of the root.
func (m *MCTS) Run(iterations int) (Handle, error) {
	return m.RunContext(context.Background(), iterations)
}

// RunContext is Run with cancellation checked between iterations. A cancelled
// search still returns the best child found so far, if any.
func (m *MCTS) RunContext(ctx context.Context, iterations int) (Handle, error) {
	root := m.tree.Root()
	m.metrics.Start()
	log.Debug().Int("iterations", iterations).Int("nodes", m.tree.Len()).Msg("search started")

	var cancelled error
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			log.Debug().Int("completed", i).Err(err).Msg("search cancelled")
			cancelled = err
			break
		}
		if err := m.iterate(); err != nil {
			return NoHandle, err
		}
		m.metrics.AddIteration()
	}

	m.last = m.metrics.Complete(m.tree.Len())
	log.Debug().Int("nodes", m.tree.Len()).Int("playouts", m.tree.Playouts(root)).Msg("search finished")

	if len(m.tree.Children(root)) == 0 {
		if cancelled != nil {
			return NoHandle, cancelled
		}
		return NoHandle, ErrNoExpansion
	}
	return m.tree.BestChild(root, m.criterion), nil
}

func (m *MCTS) iterate() error {
	node := m.Select(m.tree.Root())
	node, err := m.Expand(node)
	if err != nil {
		return err
	}
	winner, err := m.Simulate(m.tree.State(node))
	if err != nil {
		return err
	}
	m.Backpropagate(node, winner)
	return nil
}

// Select descends from h through fully expanded nodes, following the child
// with the highest UCT score, and stops at a terminal node or at a node that
// still has untried moves.
func (m *MCTS) Select(h Handle) Handle {
	for m.tree.Classify(h) == Expanded {
		child := m.bestUCT(h)
		if !child.Valid() { // Open node without legal moves
			return h
		}
		h = child
	}
	return h
}

// Expand attaches one child for an untried move of h and returns it. Terminal
// nodes and dead ends (open nodes without untried moves) are returned as is.
func (m *MCTS) Expand(h Handle) (Handle, error) {
	if m.tree.IsLeaf(h) {
		return h, nil
	}

	untried := m.tree.Untried(h)
	if len(untried) == 0 {
		m.metrics.AddDeadEnd()
		log.Debug().Int("node", int(h)).Msg("no untried moves to expand")
		return h, nil
	}

	state := m.tree.State(h)
	move := m.expansion(state, untried, m.rng)
	if move == nil {
		move = UniformExpansion(state, untried, m.rng)
	}
	next, err := state.Next(move)
	if err != nil {
		return NoHandle, fmt.Errorf("expanding node %d: %w", h, err)
	}

	m.metrics.AddExpansion()
	return m.tree.AddChild(h, move, next), nil
}

// Simulate plays the default policy from state until the game ends and
// returns the winner, or game.None for a draw. A non-terminal state without
// legal moves ends the rollout early.
func (m *MCTS) Simulate(state game.State) (game.Player, error) {
	depth := 0
	for !state.IsTerminal() {
		moves := state.Moves(state.Player())
		if len(moves) == 0 {
			m.metrics.AddDeadEnd()
			log.Debug().Int("depth", depth).Err(game.ErrNoLegalMoves).Msg("rollout reached a dead end")
			break
		}

		move := m.rollout(state, moves, m.rng)
		next, err := state.Next(move)
		if err != nil {
			return game.None, fmt.Errorf("rollout move %d: %w", depth, err)
		}
		state = next
		depth++
	}
	m.metrics.AddRolloutMoves(depth)

	winner, ok := state.Winner()
	if !ok {
		return game.None, nil
	}
	return winner, nil
}

// Backpropagate walks from h up to the root, adding a playout to every node
// and a win to the nodes whose player to move is the winner.
func (m *MCTS) Backpropagate(h Handle, winner game.Player) {
	for node := h; node.Valid(); node = m.tree.Parent(node) {
		m.tree.IncrementPlayouts(node)
		if winner != game.None && m.tree.State(node).Player() == winner {
			m.tree.AddWins(node, 1)
		}
	}
}

// UCT scores child against its parent with the engine's exploration constant.
func (m *MCTS) UCT(child Handle) float64 {
	parent := m.tree.Parent(child)
	if !parent.Valid() {
		panic("the root has no UCT score")
	}
	return UCT(m.tree.Wins(child), m.tree.Playouts(child), m.tree.Playouts(parent), m.exploration)
}
