package searcher

import (
	"fmt"
	"math"
)

type uct struct {
	c              float64
	parentPlayouts int
	lnN            float64
}

func newUCT(c float64, parentPlayouts int) uct {
	return uct{c: c, parentPlayouts: parentPlayouts, lnN: math.Log(float64(parentPlayouts))}
}

// evaluate scores a child with the given wins and playouts:
// UCT = wins/playouts + c*sqrt(ln(N)/playouts)
func (u uct) evaluate(wins, playouts int) float64 {
	if playouts == 0 { // Unvisited children come first
		return math.Inf(1)
	}
	if u.parentPlayouts <= 0 {
		panic(fmt.Sprintf("cannot compute UCT: child has %d playouts but parent has %d", playouts, u.parentPlayouts))
	}

	n := float64(playouts)
	return float64(wins)/n + u.c*math.Sqrt(u.lnN/n)
}

// UCT scores a child against a parent that has been played out parentPlayouts times.
func UCT(wins, playouts, parentPlayouts int, c float64) float64 {
	return newUCT(c, parentPlayouts).evaluate(wins, playouts)
}

// bestUCT returns the child of h with the highest UCT score, the first one
// on ties, or NoHandle when h has no children.
func (m *MCTS) bestUCT(h Handle) Handle {
	policy := newUCT(m.exploration, m.tree.Playouts(h))

	best := NoHandle
	maxScore := math.Inf(-1)
	for _, child := range m.tree.Children(h) {
		score := policy.evaluate(m.tree.Wins(child), m.tree.Playouts(child))
		if score == math.Inf(1) {
			return child
		}
		if !best.Valid() || score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}
