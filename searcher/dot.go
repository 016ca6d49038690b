package searcher

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

func nodeName(h Handle) string { return fmt.Sprintf("n%d", h) }

// ToDot renders the tree in Graphviz DOT. Every node shows its position and
// counters, every edge the move that produced the child.
func (t *Tree) ToDot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	for i := range t.nodes {
		h := Handle(i)
		label := fmt.Sprintf("#%d %v\n%v\nwins=%d playouts=%d",
			h, t.Classify(h), t.State(h), t.Wins(h), t.Playouts(h))
		attrs := map[string]string{
			"shape":    "box",
			"fontname": "Monaco",
			"label":    fmt.Sprintf("%q", label),
		}
		if err := g.AddNode("G", nodeName(h), attrs); err != nil {
			return "", err
		}
	}

	for i := range t.nodes {
		parent := Handle(i)
		for _, child := range t.Children(parent) {
			attrs := map[string]string{"label": fmt.Sprintf("%q", fmt.Sprint(t.Move(child)))}
			if err := g.AddEdge(nodeName(parent), nodeName(child), true, attrs); err != nil {
				return "", err
			}
		}
	}
	return g.String(), nil
}
