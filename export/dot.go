package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/mazecraft/maze"
	"github.com/katalvlaran/mazecraft/mazegraph"
)

// DOT writes the derived graph of m in GraphViz dot syntax. The center
// node is styled as Start, the exit as Exit; every other node is labeled
// Dead End or Junction by its traversable-neighbor count. Nodes are
// emitted in id order so output is stable for an unmutated maze.
func DOT(w io.Writer, m *maze.Maze) error {
	nodes, edges := mazegraph.Build(m)

	if _, err := fmt.Fprintln(w, "graph Maze {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    node [shape=point];"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    edge [len=1.0];"); err != nil {
		return err
	}

	byID := make([]maze.Pos, len(nodes))
	for p, id := range nodes {
		byID[id] = p
	}

	for id, p := range byID {
		var err error
		switch {
		case id == mazegraph.CenterID:
			_, err = fmt.Fprintf(w, "    n%d [color=green, shape=circle, label=\"Start\"];\n", id)
		case id == mazegraph.ExitID:
			_, err = fmt.Fprintf(w, "    n%d [color=red, shape=box, label=\"Exit\"];\n", id)
		case degree(m, p) == 1:
			_, err = fmt.Fprintf(w, "    n%d [label=\"Dead End\"];\n", id)
		default:
			_, err = fmt.Fprintf(w, "    n%d [label=\"Junction\"];\n", id)
		}
		if err != nil {
			return err
		}
	}

	sorted := make([]mazegraph.Edge, 0, len(edges))
	for e := range edges {
		sorted = append(sorted, e)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartID != sorted[j].StartID {
			return sorted[i].StartID < sorted[j].StartID
		}
		return sorted[i].EndID < sorted[j].EndID
	})
	for _, e := range sorted {
		if _, err := fmt.Fprintf(w, "    n%d -- n%d [len=%.1f, label=\"%d\"];\n",
			e.StartID, e.EndID, float64(e.Weight), e.Weight); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// degree counts the traversable orthogonal neighbors of p.
func degree(m *maze.Maze, p maze.Pos) int {
	width, height := m.Size()
	n := 0
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		x, y := p.X+d[0], p.Y+d[1]
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		if m.Get(x, y).Traversable() {
			n++
		}
	}
	return n
}
