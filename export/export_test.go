package export_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazecraft/export"
	"github.com/katalvlaran/mazecraft/maze"
)

// generated builds a reproducible, decorated maze for rendering.
func generated(seed int64) *maze.Maze {
	m := maze.New(11, 11, 3, maze.ExitRight,
		maze.WithRand(rand.New(rand.NewSource(seed))))
	m.Generate()
	m.PlaceArtifacts(0.2)
	return m
}

// TestSVG_Structure checks the emitted document shape: header with
// scaled dimensions, backdrop, scaled group, wall rects, closing tag.
func TestSVG_Structure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.SVG(&buf, generated(1), 10.0, export.SolutionNone))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="110" height="110"`))
	assert.Contains(t, out, `<rect width="100%" height="100%" fill="#eee" />`)
	assert.Contains(t, out, `<g transform="scale(10)" >`)
	assert.Contains(t, out, `fill="#222"`) // at least one wall rect
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

// TestSVG_RouteOverlay verifies the polyline appears when a route exists
// and is absent when the maze has no exit.
func TestSVG_RouteOverlay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.SVG(&buf, generated(2), 4.0, export.SolutionRoute))
	assert.Contains(t, buf.String(), "<polyline")

	buf.Reset()
	blank := maze.New(7, 7, 3, maze.ExitRight) // no exit, no route
	require.NoError(t, export.SVG(&buf, blank, 4.0, export.SolutionRoute))
	assert.NotContains(t, buf.String(), "<polyline")
}

// TestSVG_MSTOverlay verifies tree segments are drawn for SolutionMST.
func TestSVG_MSTOverlay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.SVG(&buf, generated(3), 4.0, export.SolutionMST))
	assert.Contains(t, buf.String(), "<line")
}

// TestDOT_Structure checks graph framing, styled start/exit nodes, and
// weighted edges.
func TestDOT_Structure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.DOT(&buf, generated(4)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "graph Maze {\n"))
	assert.Contains(t, out, "node [shape=point];")
	assert.Contains(t, out, `n0 [color=green, shape=circle, label="Start"];`)
	assert.Contains(t, out, `n1 [color=red, shape=box, label="Exit"];`)
	assert.Contains(t, out, " -- ")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

// TestDOT_EmptyGraph verifies a maze without an exit emits a valid,
// nodeless document.
func TestDOT_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.DOT(&buf, maze.New(7, 7, 3, maze.ExitRight)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "graph Maze {\n"))
	assert.NotContains(t, out, "n0")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

// TestImage_Geometry verifies raster dimensions and per-cell coloring.
func TestImage_Geometry(t *testing.T) {
	m := generated(5)
	w, h := m.Size()

	img := export.Image(m, 4, export.SolutionNone)
	assert.Equal(t, w*4, img.Bounds().Dx())
	assert.Equal(t, h*4, img.Bounds().Dy())

	// (0,0) is a border wall; the center cell is carved room floor.
	wall := img.RGBAAt(1, 1)
	assert.Equal(t, uint8(35), wall.R)
	c := m.Center()
	floor := img.RGBAAt(c.X*4+2, c.Y*4+2)
	assert.Equal(t, uint8(220), floor.R)
}

// TestImage_RouteOverlay verifies the exit cell is painted with the
// route color when the overlay is requested.
func TestImage_RouteOverlay(t *testing.T) {
	m := generated(6)
	w, h := m.Size()

	img := export.Image(m, 3, export.SolutionRoute)
	exit := img.RGBAAt((w-1)*3+1, (h/2)*3+1)
	assert.Equal(t, uint8(28), exit.R)
	assert.Equal(t, uint8(163), exit.G)
}

// TestSolution_String covers the overlay selector's names.
func TestSolution_String(t *testing.T) {
	assert.Equal(t, "none", export.SolutionNone.String())
	assert.Equal(t, "route", export.SolutionRoute.String())
	assert.Equal(t, "minimum_spanning_tree", export.SolutionMST.String())
}
