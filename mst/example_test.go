package mst_test

import (
	"fmt"

	"github.com/katalvlaran/mazecraft/maze"
	"github.com/katalvlaran/mazecraft/mazegraph"
	"github.com/katalvlaran/mazecraft/mst"
)

// ExamplePrim runs Prim over a synthetic triangle graph: the heaviest
// edge (weight 3) is excluded.
func ExamplePrim() {
	nodes := mazegraph.Nodes{
		{X: 0, Y: 0}: 0,
		{X: 1, Y: 0}: 1,
		{X: 2, Y: 0}: 2,
	}
	edges := mazegraph.EdgeSet{
		{StartID: 0, EndID: 1, Weight: 1}: {},
		{StartID: 1, EndID: 2, Weight: 2}: {},
		{StartID: 0, EndID: 2, Weight: 3}: {},
	}

	tree, total := mst.Prim(nodes, edges, maze.Pos{X: 0, Y: 0})
	fmt.Printf("%d edges, total weight %d\n", len(tree), total)
	// Output: 2 edges, total weight 3
}
