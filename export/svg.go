package export

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mazecraft/maze"
	"github.com/katalvlaran/mazecraft/mst"
	"github.com/katalvlaran/mazecraft/route"
)

// SVG writes m as a scalable vector drawing: a light backdrop, the
// requested solution overlay, dark wall rects, and artifact circles
// (green rewards, red dangers). scale multiplies the one-unit cell size.
// The only errors returned are w's write errors.
func SVG(w io.Writer, m *maze.Maze, scale float64, sol Solution) error {
	width, height := m.Size()

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		float64(width)*scale, float64(height)*scale,
		float64(width)*scale, float64(height)*scale); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, `<rect width="100%" height="100%" fill="#eee" />`); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <g transform=\"scale(%g)\" >\n", scale); err != nil {
		return err
	}

	if err := svgSolution(w, m, sol); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var err error
			switch c := m.Get(x, y); {
			case c == maze.Wall:
				_, err = fmt.Fprintf(w,
					"    <rect x=\"%d\" y=\"%d\" width=\"1\" height=\"1\" fill=\"#222\" />\n", x, y)
			case c.IsReward():
				_, err = fmt.Fprintf(w,
					"    <circle cx=\"%g\" cy=\"%g\" r=\"0.4\" fill=\"#2d1\" title=\"%s\" />\n",
					float64(x)+0.5, float64(y)+0.5, c)
			case c.IsDanger():
				_, err = fmt.Fprintf(w,
					"    <circle cx=\"%g\" cy=\"%g\" r=\"0.4\" fill=\"#e43\" title=\"%s\" />\n",
					float64(x)+0.5, float64(y)+0.5, c)
			}
			if err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, "  </g>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

// svgSolution draws the requested overlay, if any. An empty query result
// (no route, empty tree) draws nothing.
func svgSolution(w io.Writer, m *maze.Maze, sol Solution) error {
	switch sol {
	case SolutionRoute:
		path := route.Search(m)
		if path == nil {
			return nil
		}
		if _, err := fmt.Fprintln(w,
			`    <polyline fill="none" stroke="rgb(28, 163, 163)" stroke-width="0.35" points="`); err != nil {
			return err
		}
		for _, p := range path {
			if _, err := fmt.Fprintf(w, "%g,%g ", float64(p.X)+0.5, float64(p.Y)+0.5); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, `" />`); err != nil {
			return err
		}
	case SolutionMST:
		nodes, tree := mst.Solve(m)
		// reverse lookup: id -> position, for segment endpoints
		byID := make(map[int]maze.Pos, len(nodes))
		for p, id := range nodes {
			byID[id] = p
		}
		for e := range tree {
			a, b := byID[e.StartID], byID[e.EndID]
			if _, err := fmt.Fprintf(w,
				"    <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"rgb(28, 163, 163)\" stroke-width=\"0.35\" />\n",
				float64(a.X)+0.5, float64(a.Y)+0.5,
				float64(b.X)+0.5, float64(b.Y)+0.5); err != nil {
				return err
			}
		}
	}
	return nil
}
