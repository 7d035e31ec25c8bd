package mazegraph_test

import (
	"fmt"

	"github.com/katalvlaran/mazecraft/maze"
	"github.com/katalvlaran/mazecraft/mazegraph"
)

// ExampleBuild derives the graph of a hand-built corridor maze: the
// center, the exit, and one dead end, joined by two corridor edges.
func ExampleBuild() {
	m := maze.New(7, 7, 3, maze.ExitRight)
	for x := 1; x <= 5; x++ {
		m.Set(x, 3, maze.Path)
	}
	m.Set(6, 3, maze.Exit)

	nodes, edges := mazegraph.Build(m)
	fmt.Printf("%d nodes, %d edges\n", len(nodes), len(edges))
	// Output: 3 nodes, 2 edges
}
