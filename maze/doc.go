// Package maze implements the mutable maze grid and the three mutation
// passes that produce a playable maze: randomized depth-first carving,
// loop injection, and weighted artifact placement.
//
// What:
//
//   - Maze owns a flat width×height array of CellType labels plus the
//     configured center-room size and exit side.
//   - New normalizes dimensions (minimum 7, rounded up so that
//     (dim−7) mod 4 == 0) and allocates an all-Wall grid; it never carves.
//   - Generate carves the center room, runs the stride-2 DFS backtracker
//     from the center, marks the border Exit cell, then removes
//     (width+height)/8 interior walls to open loops.
//   - PlaceArtifacts distributes reward and danger labels over Path cells
//     outside the room under an orthogonal-exclusion rule.
//
// Why stride-2 carving:
//
//   - Moving two cells at a time and carving the intervening wall keeps
//     every wall exactly one cell thick, so the carved lattice forms a
//     spanning tree over reachable cells before loop injection.
//
// Randomness:
//
//   - Every random choice draws from the Maze's own rand.Rand, installed
//     via WithRand or time-seeded by default. Identical sources replay
//     identical mazes.
//
// Complexity:
//
//   - Generate:        O(W×H) cells visited; loop injection adds
//     O((W+H)/8 × W×H) candidate re-scans.
//   - PlaceArtifacts:  O(W×H) collection + O(n) placement.
//
// Degenerate behavior (never an error):
//
//   - Out-of-range dimensions are rounded up, not rejected.
//   - Artifact under-fill (candidate list exhausted) stops silently.
//
// Accessors perform no redundant bounds checks; callers must derive
// coordinates from Size.
package maze
