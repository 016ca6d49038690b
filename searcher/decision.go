package searcher

import "fmt"

// Criterion decides which root child a finished search recommends.
type Criterion int

const (
	// MostWins picks the child with the greatest raw win count.
	MostWins Criterion = iota
	// MostVisits picks the child with the greatest playout count.
	MostVisits
)

func (c Criterion) String() string {
	switch c {
	case MostWins:
		return "most-wins"
	case MostVisits:
		return "most-visits"
	}
	return fmt.Sprintf("Criterion(%d)", int(c))
}

// ParseCriterion maps a configuration name onto a Criterion.
func ParseCriterion(name string) (Criterion, error) {
	switch name {
	case "", "most-wins", "wins":
		return MostWins, nil
	case "most-visits", "visits":
		return MostVisits, nil
	}
	return MostWins, fmt.Errorf("unknown best child criterion %q", name)
}

// BestChild returns the child of h that maximises the criterion. Only a
// strictly greater value replaces the current best, so ties go to the child
// expanded first. It panics when h has no children.
func (t *Tree) BestChild(h Handle, criterion Criterion) Handle {
	children := t.Children(h)
	if len(children) == 0 {
		panic(fmt.Sprintf("node %d has no children", h))
	}

	value := t.Wins
	if criterion == MostVisits {
		value = t.Playouts
	}

	best := children[0]
	maxValue := value(best)
	for _, child := range children[1:] {
		if v := value(child); v > maxValue {
			maxValue = v
			best = child
		}
	}
	return best
}
