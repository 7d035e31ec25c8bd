package mazegraph

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazecraft/maze"
)

// directions is the canonical walk order: right, left, down, up.
var directions = [4]struct{ dx, dy int }{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Build derives the weighted graph of m in two passes: node discovery,
// then corridor walks closing edges. See the package documentation for
// the full contract. Running Build twice on an unmutated maze yields an
// identical result.
func Build(m *maze.Maze) (Nodes, EdgeSet) {
	width, height := m.Size()
	nodes := make(Nodes)
	edges := make(EdgeSet)

	// Pass 1a: the two fixed nodes. The exit is searched in the two
	// border columns only; without it the graph is defined to be empty.
	exit, found := findExit(m)
	if !found {
		return nodes, edges
	}
	center := m.Center()
	nodes[center] = CenterID
	nodes[exit] = ExitID
	nextID := ExitID + 1

	// Pass 1b: interior cells. A traversable cell whose count of
	// traversable orthogonal neighbors is not exactly 2 is a dead end or
	// a junction; row-major order keeps ids deterministic.
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if !m.Get(x, y).Traversable() {
				continue
			}
			p := maze.Pos{X: x, Y: y}
			if p == center || p == exit {
				continue
			}
			neighbors := 0
			for _, d := range directions {
				if m.Get(x+d.dx, y+d.dy).Traversable() {
					neighbors++
				}
			}
			if neighbors != 2 {
				nodes[p] = nextID
				nextID++
			}
		}
	}

	// Pass 2: corridor walks from every node in all four directions.
	for start, startID := range nodes {
		for _, d := range directions {
			walkCorridor(m, nodes, edges, start, startID, d.dx, d.dy)
		}
	}

	return nodes, edges
}

// findExit scans the two border columns (x = 0 and x = width-1) for the
// Exit label.
func findExit(m *maze.Maze) (maze.Pos, bool) {
	width, height := m.Size()
	for _, x := range [2]int{0, width - 1} {
		for y := 0; y < height; y++ {
			if m.Get(x, y) == maze.Exit {
				return maze.Pos{X: x, Y: y}, true
			}
		}
	}
	return maze.Pos{}, false
}

// walkCorridor follows the corridor leaving start toward (dx, dy),
// accumulating cell weights, and records an edge when it reaches another
// node. The walk never re-enters a cell it has already crossed; if it
// dead-ends before meeting a node, no edge is recorded. Only the
// lower-id endpoint inserts, deduplicating the unordered pair.
func walkCorridor(m *maze.Maze, nodes Nodes, edges EdgeSet, start maze.Pos, startID, dx, dy int) {
	width, height := m.Size()

	x, y := start.X+dx, start.Y+dy
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	first := m.Get(x, y)
	if first == maze.Wall {
		return
	}

	weight := first.Weight() // first stepped-into cell counts
	visited := mapset.New[maze.Pos]()
	visited.Put(start)

	for x >= 0 && x < width && y >= 0 && y < height {
		cur := maze.Pos{X: x, Y: y}
		if endID, ok := nodes[cur]; ok {
			if startID < endID {
				edges[Edge{StartID: startID, EndID: endID, Weight: weight}] = struct{}{}
			}
			return
		}
		visited.Put(cur)

		// step to the first unvisited non-wall neighbor, in walk order
		advanced := false
		for _, d := range directions {
			nx, ny := x+d.dx, y+d.dy
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			next := maze.Pos{X: nx, Y: ny}
			label := m.Get(nx, ny)
			if label != maze.Wall && !visited.Has(next) {
				x, y = nx, ny
				weight += label.Weight()
				advanced = true
				break
			}
		}
		if !advanced {
			return // corridor dead-ends with no node: drop the walk
		}
	}
}
