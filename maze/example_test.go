package maze_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazecraft/maze"
)

// ExampleNew shows dimension normalization: requested 60×30 becomes
// 63×31, the nearest sizes satisfying the carving constraint.
func ExampleNew() {
	m := maze.New(60, 30, 3, maze.ExitRight)
	w, h := m.Size()
	fmt.Println(w, h)
	// Output: 63 31
}

// ExampleMaze_Generate builds a reproducible maze and reports its exit.
func ExampleMaze_Generate() {
	m := maze.New(7, 7, 3, maze.ExitRight,
		maze.WithRand(rand.New(rand.NewSource(42))))
	m.Generate()

	fmt.Println(m.Get(6, 3))
	// Output: Exit
}

// ExampleMaze_PlaceArtifacts decorates a maze and renders it as ASCII:
// '#' walls, 'E' exit, '+' rewards, '!' dangers.
func ExampleMaze_PlaceArtifacts() {
	m := maze.New(11, 11, 3, maze.ExitBottom,
		maze.WithRand(rand.New(rand.NewSource(7))))
	m.Generate()
	m.PlaceArtifacts(0.15)

	fmt.Print(m) // maze layout depends on the seed
}
