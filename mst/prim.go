package mst

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazecraft/maze"
	"github.com/katalvlaran/mazecraft/mazegraph"
)

// Prim grows a minimum spanning tree over (nodes, edges) from the node at
// root, returning the tree's edges and their total weight.
//
// Steps:
//  1. Resolve root to its node id; an absent root yields an empty tree.
//  2. Repeat while unvisited nodes remain: scan every edge for the
//     minimum-weight one connecting a visited node to an unvisited one.
//  3. Mark both endpoints visited, collect the edge, accumulate weight.
//  4. Stop when no qualifying edge remains — on a disconnected graph the
//     partial forest built so far is the result, not an error.
//
// Complexity: O(V×E) time, O(V + E) memory.
func Prim(nodes mazegraph.Nodes, edges mazegraph.EdgeSet, root maze.Pos) (mazegraph.EdgeSet, int) {
	tree := make(mazegraph.EdgeSet)

	rootID, ok := nodes[root]
	if !ok {
		return tree, 0
	}

	visited := make(map[int]bool, len(nodes))
	visited[rootID] = true
	total := 0

	for len(visited) < len(nodes) {
		var best mazegraph.Edge
		found := false
		for e := range edges {
			crossing := (visited[e.StartID] && !visited[e.EndID]) ||
				(visited[e.EndID] && !visited[e.StartID])
			if crossing && (!found || e.Weight < best.Weight) {
				best = e
				found = true
			}
		}
		if !found {
			break // remaining nodes are unreachable: partial forest
		}

		visited[best.StartID] = true
		visited[best.EndID] = true
		tree[best] = struct{}{}
		total += best.Weight
	}

	return tree, total
}

// Solve derives the graph of m and runs Prim from the maze center,
// returning the full node map alongside the spanning-tree edges. This is
// the one-call query surface; use mazegraph.Build plus Prim directly when
// the total weight is needed too.
func Solve(m *maze.Maze) (mazegraph.Nodes, mazegraph.EdgeSet) {
	nodes, edges := mazegraph.Build(m)
	tree, total := Prim(nodes, edges, m.Center())
	log.Debugf("mst: spanning tree over %d nodes, %d edges, total weight %d",
		len(nodes), len(tree), total)
	return nodes, tree
}
