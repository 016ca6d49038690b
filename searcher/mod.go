// Package searcher implements Monte Carlo Tree Search with UCT selection over
// any game that satisfies the game package contract.
//
// Every iteration selects a path through fully expanded nodes, expands one
// untried move, plays a rollout to the end of the game and backs the winner up
// to the root. Each search owns its Tree; nothing is reused between turns.
package searcher

import "errors"

// ErrNoExpansion is returned when a search ends with a childless root, either
// because no iteration ran or because the root cannot be expanded.
var ErrNoExpansion = errors.New("search did not expand the root")
