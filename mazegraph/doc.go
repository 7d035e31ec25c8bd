// Package mazegraph derives an abstract weighted graph from a finished
// maze: junctions and dead ends become nodes, corridor runs between them
// become weighted edges.
//
// What:
//
//   - Build scans a *maze.Maze and returns (Nodes, EdgeSet).
//   - The center position is always node 0; the exit, found by scanning
//     the two border columns, is node 1.
//   - Every interior traversable cell whose traversable-neighbor count is
//     not exactly 2 becomes a node (1 neighbor: dead end; 3–4: junction).
//   - From each node, a walk in each of the four directions follows the
//     corridor cell-by-cell, accumulating cell weights (first stepped-into
//     cell inclusive, the node's own cell exclusive), until another node
//     closes an edge or the walk dead-ends with no edge recorded.
//
// Why a snapshot:
//
//   - The graph is a pure function of maze state at call time. Any later
//     maze mutation invalidates it; rebuild instead of caching. The
//     result holds no back-reference to the maze and is never mutated
//     after construction, so it can be handed to other owners freely.
//
// Degenerate behavior:
//
//   - A maze with no Exit cell in the border columns yields an empty
//     node map and edge set. Defined outcome, not an error.
//
// Complexity: O(W×H) node discovery + O(N×L) edge walks, where N is the
// node count and L the longest corridor. Memory: O(N + E).
package mazegraph
