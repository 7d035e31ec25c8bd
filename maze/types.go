// Package maze defines core types and options for the maze subpackage of
// github.com/katalvlaran/mazecraft: cell labels with their fixed traversal
// weights, grid positions, exit-side selection, and generation options.
package maze

import (
	"math/rand"
	"time"
)

// Pos is an integer grid coordinate. It is a pure value type and is used as
// a map key throughout the module.
type Pos struct {
	X, Y int
}

// CellType labels a single grid cell. The set is closed: structural labels
// (Wall, Path, Start, Exit), five reward variants carrying negative weights,
// and eleven danger variants carrying positive weights. Each variant's
// weight is a fixed constant reported by Weight.
type CellType uint8

const (
	// Wall is solid; the only non-traversable label.
	Wall CellType = iota
	// Path is carved, empty corridor.
	Path
	// Start marks the walker's origin cell.
	Start
	// Exit is the single border cell connecting the maze to the outside.
	Exit

	// Reward variants (negative weight: they pay the walker).
	Marshmallows
	GummyBears
	Cookies
	Candy
	Chocolate

	// Danger variants (positive weight: they cost the walker).
	Zombie
	Ghost
	Witch
	Fog
	Shadows
	Crow
	BlackCat
	Skeleton
	Spider
	Bat
	Pumpkin
)

// Rewards lists every reward variant, in declaration order.
// Artifact placement picks uniformly from this slice.
var Rewards = []CellType{Marshmallows, GummyBears, Cookies, Candy, Chocolate}

// Dangers lists every danger variant, in declaration order.
// Artifact placement picks uniformly from this slice.
var Dangers = []CellType{
	Zombie, Ghost, Witch, Fog, Shadows, Crow,
	BlackCat, Skeleton, Spider, Bat, Pumpkin,
}

// Weight returns the fixed traversal weight of the label.
// Structural labels weigh 0, rewards are negative, dangers positive.
// Only the graph builder consumes these values.
func (c CellType) Weight() int {
	switch c {
	case Marshmallows:
		return -2
	case GummyBears:
		return -3
	case Cookies:
		return -4
	case Candy:
		return -2
	case Chocolate:
		return -6
	case Zombie:
		return 7
	case Ghost:
		return 6
	case Witch:
		return 9
	case Fog:
		return 3
	case Shadows:
		return 4
	case Crow:
		return 5
	case BlackCat:
		return 2
	case Skeleton:
		return 5
	case Spider:
		return 3
	case Bat:
		return 1
	case Pumpkin:
		return 2
	default:
		// Wall, Path, Start, Exit.
		return 0
	}
}

// Traversable reports whether a walker may enter a cell with this label.
// Everything except Wall is traversable.
func (c CellType) Traversable() bool { return c != Wall }

// IsReward reports whether the label is one of the reward variants.
func (c CellType) IsReward() bool { return c >= Marshmallows && c <= Chocolate }

// IsDanger reports whether the label is one of the danger variants.
func (c CellType) IsDanger() bool { return c >= Zombie && c <= Pumpkin }

// String implements fmt.Stringer for human-readable output.
func (c CellType) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	case Start:
		return "Start"
	case Exit:
		return "Exit"
	case Marshmallows:
		return "Marshmallows"
	case GummyBears:
		return "Gummy Bears"
	case Cookies:
		return "Cookies"
	case Candy:
		return "Candy"
	case Chocolate:
		return "Chocolate"
	case Zombie:
		return "Zombie"
	case Ghost:
		return "Ghost"
	case Witch:
		return "Witch"
	case Fog:
		return "Fog"
	case Shadows:
		return "Shadows"
	case Crow:
		return "Crow"
	case BlackCat:
		return "Black Cat"
	case Skeleton:
		return "Skeleton"
	case Spider:
		return "Spider"
	case Bat:
		return "Bat"
	case Pumpkin:
		return "Pumpkin"
	default:
		return "Unknown"
	}
}

// ExitSide selects which border receives the single Exit cell.
type ExitSide int

const (
	// ExitRandom picks one of the four sides uniformly at Generate time.
	ExitRandom ExitSide = iota
	// ExitLeft places the exit at (0, height/2).
	ExitLeft
	// ExitRight places the exit at (width-1, height/2).
	ExitRight
	// ExitTop places the exit at (width/2, 0).
	ExitTop
	// ExitBottom places the exit at (width/2, height-1).
	ExitBottom
)

// String implements fmt.Stringer.
func (s ExitSide) String() string {
	switch s {
	case ExitLeft:
		return "left"
	case ExitRight:
		return "right"
	case ExitTop:
		return "top"
	case ExitBottom:
		return "bottom"
	default:
		return "random"
	}
}

// Option configures optional behavior of a Maze at construction time.
// Use with New(width, height, roomSize, side, opts...).
type Option func(*Options)

// Options holds configurable parameters for maze construction.
type Options struct {
	// Rand is the randomness source for every random choice the maze
	// makes: carve direction, loop-injection wall pick, artifact shuffle
	// and variant pick, and exit-side choice under ExitRandom.
	// Defaults to a time-seeded source, so two default mazes differ.
	Rand *rand.Rand
}

// DefaultOptions returns Options with a time-seeded randomness source.
func DefaultOptions() Options {
	return Options{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand returns an Option that installs r as the maze's randomness
// source, making generation fully reproducible. A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
