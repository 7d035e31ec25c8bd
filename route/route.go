package route

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazecraft/maze"
)

// item pairs a position with the path that reached it.
type item struct {
	pos  maze.Pos
	path []maze.Pos
}

// directions is the expansion order: right, left, down, up.
var directions = [4]struct{ dx, dy int }{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Search explores m depth-first from the center and returns the
// accumulated path when it pops the Exit cell, or nil when the work list
// drains without reaching it (no exit, or exit walled off). The first
// path element is a seed (the center, or a room edge cell); the last is
// the exit.
func Search(m *maze.Maze) []maze.Pos {
	width, height := m.Size()
	start := m.Center()

	visited := mapset.New[maze.Pos]()
	var list []item

	// Seed room edge cells that open to the outside ahead of the start,
	// so the start is popped first and they act as later fallbacks.
	for _, p := range roomExits(m) {
		list = append(list, item{pos: p, path: []maze.Pos{p}})
		visited.Put(p)
	}
	list = append(list, item{pos: start, path: []maze.Pos{start}})
	visited.Put(start)

	for len(list) > 0 {
		it := list[len(list)-1]
		list = list[:len(list)-1]

		if m.Get(it.pos.X, it.pos.Y) == maze.Exit {
			return it.path
		}

		for _, d := range directions {
			nx, ny := it.pos.X+d.dx, it.pos.Y+d.dy
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			next := maze.Pos{X: nx, Y: ny}
			if visited.Has(next) || !m.Get(nx, ny).Traversable() {
				continue
			}
			// visited on push, not on pop: each cell expands once
			visited.Put(next)
			extended := make([]maze.Pos, len(it.path)+1)
			copy(extended, it.path)
			extended[len(it.path)] = next
			list = append(list, item{pos: next, path: extended})
		}
	}

	return nil
}

// roomExits returns the edge cells of the central room that have at least
// one traversable neighbor outside the room.
func roomExits(m *maze.Maze) []maze.Pos {
	width, height := m.Size()
	c, half := m.Center(), m.RoomSize()/2
	minX, maxX := c.X-half, c.X+half
	minY, maxY := c.Y-half, c.Y+half

	var exits []maze.Pos
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x != minX && x != maxX && y != minY && y != maxY {
				continue // interior room cell, not an edge
			}
			for _, d := range directions {
				nx, ny := x+d.dx, y+d.dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if !m.Get(nx, ny).Traversable() {
					continue
				}
				if nx >= minX && nx <= maxX && ny >= minY && ny <= maxY {
					continue // still inside the room
				}
				exits = append(exits, maze.Pos{X: x, Y: y})
				break
			}
		}
	}
	return exits
}
