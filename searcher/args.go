package searcher

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"mcts/experiments/metrics"
)

// Hyperparameters for MCTS

var DefaultExploration = math.Sqrt2 // Exploration constant C

type Option func(m *MCTS)

// WithSeed seeds the engine's random number generator.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the engine draw from rng.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 && !math.IsNaN(c) {
			m.exploration = c
		}
	}
}

func WithExpansionPolicy(policy ExpansionPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.expansion = policy
		}
	}
}

func WithDefaultPolicy(policy DefaultPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.rollout = policy
		}
	}
}

// WithPolicies installs both strategies of a game; nil members keep the defaults.
func WithPolicies(policies Policies) Option {
	return func(m *MCTS) {
		WithExpansionPolicy(policies.Expansion)(m)
		WithDefaultPolicy(policies.Default)(m)
	}
}

func WithBestChild(criterion Criterion) Option {
	return func(m *MCTS) {
		m.criterion = criterion
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
