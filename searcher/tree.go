package searcher

import (
	"fmt"

	"mcts/game"
	"mcts/utils"
)

// Tree is an arena of nodes. Children and parents refer to each other by
// Handle, so dropping the Tree releases the whole search.
type Tree struct {
	nodes  []Node
	opener game.Player
}

// NewTree returns a tree holding a single root node for state.
func NewTree(root game.State, opener game.Player) *Tree {
	t := &Tree{
		nodes:  make([]Node, 0, 64),
		opener: opener,
	}
	t.nodes = append(t.nodes, Node{state: root, parent: NoHandle})
	return t
}

// NewGameTree roots a tree at the starting state of g.
func NewGameTree(g game.Game) *Tree {
	return NewTree(g.Start(), g.Opener())
}

func (t *Tree) node(h Handle) *Node {
	if !h.Valid() || int(h) >= len(t.nodes) {
		panic(fmt.Sprintf("invalid node handle %d", h))
	}
	return &t.nodes[h]
}

func (t *Tree) Root() Handle { return 0 }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

func (t *Tree) Opener() game.Player { return t.opener }

func (t *Tree) State(h Handle) game.State { return t.node(h).state }

// Move returns the move that led into h, nil for the root.
func (t *Tree) Move(h Handle) game.Move { return t.node(h).move }

func (t *Tree) Parent(h Handle) Handle { return t.node(h).parent }

// Children returns the handles of h's children in expansion order. The slice
// must not be modified.
func (t *Tree) Children(h Handle) []Handle { return t.node(h).children }

func (t *Tree) Wins(h Handle) int { return t.node(h).wins }

func (t *Tree) Playouts(h Handle) int { return t.node(h).playouts }

// IsLeaf reports whether the game is over at h. An open node without children
// is not a leaf, it just has not been expanded yet.
func (t *Tree) IsLeaf(h Handle) bool { return t.node(h).state.IsTerminal() }

// OpenerToMove reports whether the player to move at h is the game's opener.
func (t *Tree) OpenerToMove(h Handle) bool {
	return t.node(h).state.Player() == t.opener
}

// LegalMoves returns the moves available to the player to move at h.
func (t *Tree) LegalMoves(h Handle) []game.Move {
	n := t.node(h)
	if !n.movesKnown {
		n.moves = n.state.Moves(n.state.Player())
		n.movesKnown = true
	}
	return n.moves
}

// Classify tells terminal nodes from open ones, and open nodes with untried
// moves from fully expanded ones.
func (t *Tree) Classify(h Handle) Kind {
	if t.IsLeaf(h) {
		return Terminal
	}
	if len(t.Children(h)) >= len(t.LegalMoves(h)) {
		return Expanded
	}
	return Unexpanded
}

// Untried returns the legal moves at h that no child represents yet.
func (t *Tree) Untried(h Handle) []game.Move {
	moves := t.LegalMoves(h)
	children := t.Children(h)
	tried := make([]game.Move, len(children))
	for i, child := range children {
		tried[i] = t.Move(child)
	}

	untried := make([]game.Move, 0, len(moves)-min(len(moves), len(tried)))
	for _, move := range moves {
		if utils.FindIndex(tried, move) < 0 {
			untried = append(untried, move)
		}
	}
	return untried
}

// AddChild attaches a new node for state, reached by move, under parent.
func (t *Tree) AddChild(parent Handle, move game.Move, state game.State) Handle {
	t.node(parent) // validate before growing the arena
	child := Handle(len(t.nodes))
	t.nodes = append(t.nodes, Node{state: state, move: move, parent: parent})
	p := &t.nodes[parent]
	p.children = append(p.children, child)
	return child
}

func (t *Tree) IncrementPlayouts(h Handle) { t.node(h).playouts++ }

func (t *Tree) AddWins(h Handle, wins int) { t.node(h).wins += wins }

// Aggregate overwrites h's counters with the sums over its direct children.
// Call it bottom-up when aggregating already simulated subtrees.
func (t *Tree) Aggregate(h Handle) {
	playouts, wins := 0, 0
	for _, child := range t.Children(h) {
		playouts += t.Playouts(child)
		wins += t.Wins(child)
	}
	n := t.node(h)
	n.playouts = playouts
	n.wins = wins
}

// Depth returns the number of edges between h and the root.
func (t *Tree) Depth(h Handle) int {
	depth := 0
	for p := t.Parent(h); p.Valid(); p = t.Parent(p) {
		depth++
	}
	return depth
}
