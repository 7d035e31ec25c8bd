// Command mazecraft generates a maze, optionally decorates it with
// artifacts, and writes the requested exports (SVG, DOT, PNG). Flags can
// also be supplied through MAZECRAFT_* environment variables.
package main

import (
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mazecraft/export"
	"github.com/katalvlaran/mazecraft/maze"
	"github.com/katalvlaran/mazecraft/mazegraph"
	"github.com/katalvlaran/mazecraft/mst"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mazecraft",
		Short:         "Generate and solve mazes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.IntP("width", "w", 60, "width of the maze")
	flags.Int("height", 30, "height of the maze")
	flags.IntP("room-size", "r", 3, "side of the central room")
	flags.Float64P("fill-ratio", "f", 0.07, "ratio of path cells to fill with artifacts")
	flags.StringP("exit-side", "e", "right", "exit side: left, right, top, bottom or random")
	flags.StringP("dot-file", "d", "", "write the derived graph to a GraphViz DOT file")
	flags.StringP("svg-file", "s", "", "write the maze to an SVG file")
	flags.StringP("png-file", "p", "", "write the maze to a PNG file")
	flags.Float64("scale", 10.0, "SVG cell scale")
	flags.Int("cell-pixels", 9, "PNG pixels per cell")
	flags.String("with-solution", "none", "overlay: none, route or mst")
	flags.Int64("seed", 0, "random seed (0 seeds from the clock)")
	flags.BoolP("verbose", "v", false, "enable verbose output")

	viper.SetEnvPrefix("MAZECRAFT")
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlags(flags))

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	side, err := parseSide(viper.GetString("exit-side"))
	if err != nil {
		return err
	}
	sol, err := parseSolution(viper.GetString("with-solution"))
	if err != nil {
		return err
	}

	seed := viper.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("seed %d", seed)

	m := maze.New(
		viper.GetInt("width"),
		viper.GetInt("height"),
		viper.GetInt("room-size"),
		side,
		maze.WithRand(rand.New(rand.NewSource(seed))),
	)
	m.Generate()
	m.PlaceArtifacts(viper.GetFloat64("fill-ratio"))

	if name := viper.GetString("dot-file"); name != "" {
		if err = writeFile(name, func(f *os.File) error {
			return export.DOT(f, m)
		}); err != nil {
			return fmt.Errorf("export DOT: %w", err)
		}
	}
	if name := viper.GetString("svg-file"); name != "" {
		if err = writeFile(name, func(f *os.File) error {
			return export.SVG(f, m, viper.GetFloat64("scale"), sol)
		}); err != nil {
			return fmt.Errorf("export SVG: %w", err)
		}
	}
	if name := viper.GetString("png-file"); name != "" {
		if err = writeFile(name, func(f *os.File) error {
			return png.Encode(f, export.Image(m, viper.GetInt("cell-pixels"), sol))
		}); err != nil {
			return fmt.Errorf("export PNG: %w", err)
		}
	}

	nodes, edges := mazegraph.Build(m)
	tree, total := mst.Prim(nodes, edges, m.Center())
	fmt.Printf("minimum spanning tree: %d nodes, %d edges, total weight %d\n",
		len(nodes), len(tree), total)

	return nil
}

// writeFile creates name, hands it to write, and closes it, preferring
// the write error over the close error.
func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	werr := write(f)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

func parseSide(s string) (maze.ExitSide, error) {
	switch s {
	case "left":
		return maze.ExitLeft, nil
	case "right":
		return maze.ExitRight, nil
	case "top":
		return maze.ExitTop, nil
	case "bottom":
		return maze.ExitBottom, nil
	case "random":
		return maze.ExitRandom, nil
	default:
		return 0, fmt.Errorf("unknown exit side %q", s)
	}
}

func parseSolution(s string) (export.Solution, error) {
	switch s {
	case "none":
		return export.SolutionNone, nil
	case "route":
		return export.SolutionRoute, nil
	case "mst":
		return export.SolutionMST, nil
	default:
		return 0, fmt.Errorf("unknown solution overlay %q", s)
	}
}
