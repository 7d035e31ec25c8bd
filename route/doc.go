// Package route finds a connectivity path from the maze center to the
// Exit cell, walking the grid directly.
//
// The search is a depth-first exploration over an explicit LIFO work
// list: entries pair a position with the path accumulated so far, the
// most recently pushed entry pops first, and neighbors are marked visited
// on push to avoid duplicate expansion. Besides the plain start, every
// edge cell of the central room with a traversable neighbor outside the
// room seeds the list — ahead of the start, so the start pops first and
// the room edges serve as later fallbacks.
//
// The returned path is *a* connecting path, not necessarily the
// geometrically shortest one: a LIFO list makes this a DFS, and the
// historical traversal order is kept deliberately. Consumers that need
// true shortest paths must not rely on Search.
//
// Complexity: O(W×H) time and memory (each cell pushed at most once;
// path copies add O(L) per push, L the current path length).
package route
