package searcher

import (
	"fmt"

	"mcts/game"
)

// Handle addresses a Node inside its Tree.
type Handle int

// NoHandle is the parent of the root.
const NoHandle Handle = -1

func (h Handle) Valid() bool { return h >= 0 }

// Kind classifies a node for the search loop.
type Kind int

const (
	// Terminal nodes hold a finished game and are never expanded.
	Terminal Kind = iota
	// Unexpanded nodes are open and still have untried legal moves.
	Unexpanded
	// Expanded nodes are open and have a child for every legal move.
	Expanded
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Unexpanded:
		return "unexpanded"
	case Expanded:
		return "expanded"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is a vertex of the search tree. Nodes are only reachable through their
// Tree, which is the single place their counters are mutated.
type Node struct {
	state    game.State
	move     game.Move // move that produced state, nil at the root
	parent   Handle
	children []Handle

	moves      []game.Move // legal moves of the mover, filled on first use
	movesKnown bool

	playouts int
	wins     int
}
