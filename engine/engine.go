package engine

import (
	"context"

	"mcts/experiments/metrics"
	"mcts/game"
)

// Agent chooses the move for the player to move in state.
type Agent interface {
	FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error)
}

// Result of a finished or capped game.
type Result struct {
	Winner  game.Player // game.None for a draw or when the turn cap was hit
	Decided bool
	Final   game.State
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}
