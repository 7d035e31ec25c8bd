package maze

import (
	"math/rand"
	"strings"
)

// Maze is the mutable rectangular grid of cell labels. It is created at
// fixed (normalized) dimensions and never resized; Generate and
// PlaceArtifacts mutate it in place. A Maze is exclusively owned by its
// creator and is not safe for concurrent mutation.
type Maze struct {
	width, height int
	roomSize      int
	side          ExitSide
	rng           *rand.Rand
	cells         []CellType // row-major: cells[y*width+x]
}

// constrainDimension rounds dim up to the nearest valid maze dimension:
// at least 7, and satisfying (dim-7) mod 4 == 0. The rule guarantees a
// center cell and room exist with consistent odd-cell spacing for the
// stride-2 carving moves.
func constrainDimension(dim int) int {
	if dim < 7 {
		return 7
	}
	if r := (dim - 7) % 4; r != 0 {
		return dim + (4 - r)
	}
	return dim
}

// New allocates an all-Wall maze of the normalized dimensions. It does not
// carve; call Generate for that. roomSize is the side of the central square
// room carved by Generate, side selects the exit border.
// Complexity: O(W×H).
func New(width, height, roomSize int, side ExitSide, opts ...Option) *Maze {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	width = constrainDimension(width)
	height = constrainDimension(height)

	return &Maze{
		width:    width,
		height:   height,
		roomSize: roomSize,
		side:     side,
		rng:      o.Rand,
		cells:    make([]CellType, width*height), // zero value is Wall
	}
}

// Size returns the normalized (width, height) of the maze.
func (m *Maze) Size() (width, height int) { return m.width, m.height }

// RoomSize returns the configured side length of the central room.
func (m *Maze) RoomSize() int { return m.roomSize }

// Side returns the configured exit side.
func (m *Maze) Side() ExitSide { return m.side }

// Center returns the maze's center position (width/2, height/2), the root
// of carving and of every structural query.
func (m *Maze) Center() Pos { return Pos{X: m.width / 2, Y: m.height / 2} }

// Get returns the label at (x, y). Coordinates must lie within Size;
// the maze performs no redundant bounds check.
func (m *Maze) Get(x, y int) CellType { return m.cells[y*m.width+x] }

// Set overwrites the label at (x, y) unconditionally. Same bounds contract
// as Get; no transition validation is performed.
func (m *Maze) Set(x, y int, c CellType) { m.cells[y*m.width+x] = c }

// InRoom reports whether p lies inside the central square room
// (inclusive of its edge cells).
func (m *Maze) InRoom(p Pos) bool {
	c, half := m.Center(), m.roomSize/2
	return p.X >= c.X-half && p.X <= c.X+half &&
		p.Y >= c.Y-half && p.Y <= c.Y+half
}

// String renders the maze as ASCII, one rune per cell:
// '#' wall, ' ' path, 'S' start, 'E' exit, '+' reward, '!' danger.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			switch c := m.Get(x, y); {
			case c == Wall:
				b.WriteByte('#')
			case c == Start:
				b.WriteByte('S')
			case c == Exit:
				b.WriteByte('E')
			case c.IsReward():
				b.WriteByte('+')
			case c.IsDanger():
				b.WriteByte('!')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
