package maze

import (
	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Generate turns the all-Wall grid into a playable maze, in place:
//
//  1. Carve the central square room of side roomSize.
//  2. Run the randomized DFS backtracker from the center (stride-2 moves,
//     intervening walls carved along with the target cell), producing a
//     spanning tree over reachable lattice cells.
//  3. Mark the border Exit cell for the configured side (a uniformly
//     random side when ExitRandom).
//  4. Inject loops: remove (width+height)/8 interior walls, each chosen
//     uniformly among the candidates of a fresh scan.
//
// After step 2 exactly one route exists between any two carved cells;
// step 4 generally breaks that tree property and opens multiple routes.
func (m *Maze) Generate() {
	center := m.Center()
	m.carveRoom(center)
	m.carveFrom(center)

	exit := m.exitPos()
	m.Set(exit.X, exit.Y, Exit)

	m.injectLoops()
}

// carveRoom opens the central square room around c. The room is fully
// carved before maze generation proper begins.
func (m *Maze) carveRoom(c Pos) {
	half := m.roomSize / 2
	for y := c.Y - half; y <= c.Y+half; y++ {
		for x := c.X - half; x <= c.X+half; x++ {
			m.Set(x, y, Path)
		}
	}
}

// exitPos resolves the configured exit side to a border position.
// ExitRandom draws one of the four canonical border positions uniformly.
func (m *Maze) exitPos() Pos {
	left := Pos{X: 0, Y: m.height / 2}
	right := Pos{X: m.width - 1, Y: m.height / 2}
	top := Pos{X: m.width / 2, Y: 0}
	bottom := Pos{X: m.width / 2, Y: m.height - 1}

	switch m.side {
	case ExitLeft:
		return left
	case ExitRight:
		return right
	case ExitTop:
		return top
	case ExitBottom:
		return bottom
	default:
		sides := [4]Pos{left, right, top, bottom}
		return sides[m.rng.Intn(len(sides))]
	}
}

// carveFrom runs the randomized iterative DFS backtracker rooted at start.
//
// Each step pops a position and collects its four stride-2 neighbors
// together with the intervening wall cells, keeping only neighbors inside
// [1, dim-2] on both axes and not yet visited. If any remain, the current
// position is pushed back (so it is revisited until exhausted), one
// direction is drawn uniformly, both the wall and the target cell are
// carved to Path, and the target is pushed. An exhausted position is
// simply dropped — that is the backtrack.
func (m *Maze) carveFrom(start Pos) {
	stack := []Pos{start}
	visited := mapset.New[Pos]()
	visited.Put(start)

	// step target and intervening wall, per direction
	type move struct{ next, wall Pos }

	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		moves := [4]move{
			{Pos{pos.X + 2, pos.Y}, Pos{pos.X + 1, pos.Y}}, // right
			{Pos{pos.X - 2, pos.Y}, Pos{pos.X - 1, pos.Y}}, // left
			{Pos{pos.X, pos.Y + 2}, Pos{pos.X, pos.Y + 1}}, // down
			{Pos{pos.X, pos.Y - 2}, Pos{pos.X, pos.Y - 1}}, // up
		}

		valid := make([]move, 0, 4)
		for _, mv := range moves {
			if mv.next.X >= 1 && mv.next.X <= m.width-2 &&
				mv.next.Y >= 1 && mv.next.Y <= m.height-2 &&
				!visited.Has(mv.next) {
				valid = append(valid, mv)
			}
		}
		if len(valid) == 0 {
			continue // dead end: backtrack by dropping pos
		}

		stack = append(stack, pos)

		mv := valid[m.rng.Intn(len(valid))]
		m.Set(mv.wall.X, mv.wall.Y, Path)
		m.Set(mv.next.X, mv.next.Y, Path)
		visited.Put(mv.next)
		stack = append(stack, mv.next)
	}
}

// injectLoops removes (width+height)/8 interior walls to create cycles.
//
// Each removal re-scans all interior wall cells for candidates: a wall
// with exactly two Path neighbors forming a horizontal (left+right) or
// vertical (up+down) pair — never a diagonal pair. One candidate is drawn
// uniformly and carved. A pass with no candidates is a no-op.
func (m *Maze) injectLoops() {
	removals := (m.width + m.height) / 8
	log.Debugf("maze: removing up to %d walls to open loops", removals)

	for i := 0; i < removals; i++ {
		var candidates []Pos
		for y := 1; y < m.height-1; y++ {
			for x := 1; x < m.width-1; x++ {
				if m.Get(x, y) != Wall {
					continue
				}
				paths := 0
				for _, n := range [4]Pos{{x + 1, y}, {x - 1, y}, {x, y + 1}, {x, y - 1}} {
					if m.Get(n.X, n.Y) == Path {
						paths++
					}
				}
				if paths != 2 {
					continue
				}
				horizontal := m.Get(x+1, y) == Path && m.Get(x-1, y) == Path
				vertical := m.Get(x, y+1) == Path && m.Get(x, y-1) == Path
				if horizontal || vertical {
					candidates = append(candidates, Pos{X: x, Y: y})
				}
			}
		}
		if len(candidates) == 0 {
			continue
		}
		p := candidates[m.rng.Intn(len(candidates))]
		m.Set(p.X, p.Y, Path)
	}
}
