// Package mazecraft procedurally generates grid-based mazes, enriches them
// with weighted artifact cells, and answers structural queries about the
// result.
//
// 🌽 What is mazecraft?
//
//	A small, focused library that brings together:
//		• maze      — the mutable Grid, the randomized DFS carver, loop
//		              injection, and weighted artifact placement
//		• mazegraph — derivation of an abstract weighted graph from a
//		              finished maze (junctions and dead ends as nodes,
//		              corridor runs as weighted edges)
//		• route     — connectivity search from the maze center to the exit
//		• mst       — Prim's minimum spanning tree over the derived graph
//		• export    — read-only SVG, GraphViz DOT and raster renderers
//
// ✨ Design points
//
//   - Deterministic when you want it – inject your own rand.Rand via
//     maze.WithRand and every random choice replays exactly
//   - Degenerate inputs degrade, never panic – a maze without an exit
//     yields an empty graph and a nil route, not an error
//   - Derived graphs are disposable snapshots – rebuild after mutation,
//     no caching, no back-references
//
// Quick ASCII taste of a 7×7 maze with a 3×3 center room and a right exit:
//
//	#######
//	# ### #
//	#     #
//	##    E
//	#     #
//	# # # #
//	#######
//
// Start with maze.New, call Generate, then query away. See each package's
// doc.go for algorithms, complexity, and error contracts.
//
//	go get github.com/katalvlaran/mazecraft
package mazecraft
