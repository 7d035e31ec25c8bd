package maze_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazecraft/maze"
)

// snapshot captures the full cell grid for later comparison.
func snapshot(m *maze.Maze) []maze.CellType {
	w, h := m.Size()
	cells := make([]maze.CellType, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells = append(cells, m.Get(x, y))
		}
	}
	return cells
}

// TestPlaceArtifacts_ZeroRatio verifies a fill ratio of 0 leaves the maze
// untouched: no reward or danger labels appear anywhere.
func TestPlaceArtifacts_ZeroRatio(t *testing.T) {
	m := seeded(t, 11, 11, 3, maze.ExitRight, 2)
	before := snapshot(m)

	m.PlaceArtifacts(0.0)

	require.Equal(t, before, snapshot(m))
	for _, c := range snapshot(m) {
		assert.False(t, c.IsReward() || c.IsDanger())
	}
}

// TestPlaceArtifacts_NeverAdjacent verifies the exclusion rule across fill
// ratios: no two placed artifacts are ever orthogonal neighbors.
func TestPlaceArtifacts_NeverAdjacent(t *testing.T) {
	for _, ratio := range []float64{0.1, 0.25, 0.5, 1.0} {
		t.Run(fmt.Sprintf("ratio=%.2f", ratio), func(t *testing.T) {
			m := seeded(t, 23, 23, 3, maze.ExitRight, 13)
			m.PlaceArtifacts(ratio)

			w, h := m.Size()
			isArtifact := func(x, y int) bool {
				c := m.Get(x, y)
				return c.IsReward() || c.IsDanger()
			}
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if !isArtifact(x, y) {
						continue
					}
					for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
						nx, ny := x+d[0], y+d[1]
						if nx < 0 || nx >= w || ny < 0 || ny >= h {
							continue
						}
						assert.False(t, isArtifact(nx, ny),
							"adjacent artifacts at (%d,%d) and (%d,%d)", x, y, nx, ny)
					}
				}
			}
		})
	}
}

// TestPlaceArtifacts_OutsideRoomAndBorder verifies artifacts land only on
// former Path cells: never inside the central room and never on the
// border (border cells are Wall or Exit, not Path).
func TestPlaceArtifacts_OutsideRoomAndBorder(t *testing.T) {
	m := seeded(t, 15, 15, 3, maze.ExitLeft, 21)
	m.PlaceArtifacts(0.5)

	w, h := m.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := m.Get(x, y)
			if !c.IsReward() && !c.IsDanger() {
				continue
			}
			p := maze.Pos{X: x, Y: y}
			assert.False(t, m.InRoom(p), "artifact inside room at %v", p)
			assert.True(t, x > 0 && x < w-1 && y > 0 && y < h-1,
				"artifact on border at %v", p)
		}
	}
}

// TestPlaceArtifacts_TargetBounds verifies the placed count never exceeds
// the ratio target and that rewards stay within their 40% share.
func TestPlaceArtifacts_TargetBounds(t *testing.T) {
	m := seeded(t, 23, 23, 3, maze.ExitRight, 17)

	pathCells := 0
	for _, c := range snapshot(m) {
		if c == maze.Path {
			pathCells++
		}
	}

	const ratio = 0.3
	m.PlaceArtifacts(ratio)

	rewards, dangers := 0, 0
	for _, c := range snapshot(m) {
		switch {
		case c.IsReward():
			rewards++
		case c.IsDanger():
			dangers++
		}
	}
	target := int(float64(pathCells) * ratio)
	assert.LessOrEqual(t, rewards+dangers, target)
	assert.LessOrEqual(t, rewards, int(float64(target)*0.4))
}

// TestPlaceArtifacts_Deterministic verifies the same source yields the
// same placement.
func TestPlaceArtifacts_Deterministic(t *testing.T) {
	place := func() []maze.CellType {
		m := maze.New(15, 15, 3, maze.ExitRight,
			maze.WithRand(rand.New(rand.NewSource(99))))
		m.Generate()
		m.PlaceArtifacts(0.4)
		return snapshot(m)
	}
	assert.Equal(t, place(), place())
}
