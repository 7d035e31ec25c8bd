package export

import (
	"image"
	"image/color"

	"github.com/katalvlaran/mazecraft/maze"
	"github.com/katalvlaran/mazecraft/route"
)

// Renderer palette. Walls dark, corridors light, artifacts and exit in
// saturated marker colors, route overlay teal.
var (
	wallColor   = color.RGBA{R: 35, G: 35, B: 40, A: 255}
	pathColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	exitColor   = color.RGBA{R: 64, G: 96, B: 255, A: 255}
	rewardColor = color.RGBA{R: 34, G: 221, B: 17, A: 255}
	dangerColor = color.RGBA{R: 238, G: 68, B: 51, A: 255}
	routeColor  = color.RGBA{R: 28, G: 163, B: 163, A: 255}
)

// Image renders m into an RGBA raster, cellPixels pixels per cell side
// (values below 1 are treated as 1). With SolutionRoute the discovered
// route is overdrawn cell by cell; SolutionMST is not rasterized and
// falls back to the plain maze — use SVG for tree overlays.
func Image(m *maze.Maze, cellPixels int, sol Solution) *image.RGBA {
	if cellPixels < 1 {
		cellPixels = 1
	}
	width, height := m.Size()
	img := image.NewRGBA(image.Rect(0, 0, width*cellPixels, height*cellPixels))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fillCell(img, x, y, cellPixels, cellColor(m.Get(x, y)))
		}
	}

	if sol == SolutionRoute {
		for _, p := range route.Search(m) {
			fillCell(img, p.X, p.Y, cellPixels, routeColor)
		}
	}

	return img
}

// cellColor maps a label to its raster color.
func cellColor(c maze.CellType) color.RGBA {
	switch {
	case c == maze.Wall:
		return wallColor
	case c == maze.Exit:
		return exitColor
	case c.IsReward():
		return rewardColor
	case c.IsDanger():
		return dangerColor
	default:
		return pathColor
	}
}

// fillCell paints the cellPixels×cellPixels block of grid cell (x, y).
func fillCell(img *image.RGBA, x, y, cellPixels int, c color.RGBA) {
	for py := y * cellPixels; py < (y+1)*cellPixels; py++ {
		for px := x * cellPixels; px < (x+1)*cellPixels; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}
