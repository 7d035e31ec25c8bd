// Package mst computes a minimum spanning tree over the derived maze
// graph using Prim's algorithm rooted at the maze center.
//
// The implementation grows a visited node set from the root and, on each
// step, scans the full edge set for the minimum-weight edge with exactly
// one visited endpoint. No heap and no adjacency index: the derived
// graph is a bare EdgeSet, and its node/edge counts track corridor
// structure — not raw cell count — so the O(V×E) re-scan stays cheap.
//
// A disconnected graph is not an error: the loop stops when no qualifying
// edge remains and the partial forest built so far is returned.
package mst
