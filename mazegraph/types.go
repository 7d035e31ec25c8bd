// Package mazegraph defines the types of the derived maze graph for the
// mazegraph subpackage of github.com/katalvlaran/mazecraft.
package mazegraph

import "github.com/katalvlaran/mazecraft/maze"

// CenterID is the node id always assigned to the maze center.
const CenterID = 0

// ExitID is the node id assigned to the exit when one is found.
const ExitID = 1

// Nodes maps a graph-significant grid position (center, exit, dead end,
// or junction) to its integer node id. The center is always id 0 and the
// exit, when present, id 1; remaining ids follow row-major discovery
// order.
type Nodes map[maze.Pos]int

// Edge is an unordered pair of node ids with the accumulated weight of
// the corridor run between them. StartID is always the lower id, which
// deduplicates the pair inside an EdgeSet.
type Edge struct {
	StartID, EndID int
	Weight         int
}

// EdgeSet holds at most one Edge per unordered node pair.
type EdgeSet map[Edge]struct{}

// TotalWeight sums the weights of every edge in the set.
func (es EdgeSet) TotalWeight() int {
	total := 0
	for e := range es {
		total += e.Weight
	}
	return total
}
