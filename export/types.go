// Package export defines the solution-overlay selector shared by the
// renderers of github.com/katalvlaran/mazecraft/export.
package export

// Solution selects which query result, if any, a renderer overlays on
// top of the maze drawing.
type Solution int

const (
	// SolutionNone draws the maze only.
	SolutionNone Solution = iota
	// SolutionRoute overlays the route.Search path.
	SolutionRoute
	// SolutionMST overlays the mst.Solve spanning tree.
	SolutionMST
)

// String implements fmt.Stringer.
func (s Solution) String() string {
	switch s {
	case SolutionRoute:
		return "route"
	case SolutionMST:
		return "minimum_spanning_tree"
	default:
		return "none"
	}
}
