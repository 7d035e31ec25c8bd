package maze

import (
	"github.com/zyedidia/generic/mapset"
)

// rewardShare is the fraction of placed artifacts that are rewards;
// the remainder are dangers.
const rewardShare = 0.4

// PlaceArtifacts distributes reward and danger labels over the maze,
// in place. fillRatio in [0, 1] selects the target artifact count as
// floor(fillRatio × pathCellCount); 40% of the target are rewards, the
// rest dangers.
//
// Candidates are all Path cells outside the central room, shuffled
// uniformly. Placement is greedy — rewards first, then dangers — and a
// candidate is skipped if it or any orthogonal neighbor already received
// an artifact, so no two artifacts are ever adjacent. Each placement
// draws its variant uniformly from Rewards or Dangers. If the candidate
// list runs out before the target is met, placement stops silently.
func (m *Maze) PlaceArtifacts(fillRatio float64) {
	pathCells := 0
	for _, c := range m.cells {
		if c == Path {
			pathCells++
		}
	}
	target := int(float64(pathCells) * fillRatio)
	rewardCount := int(float64(target) * rewardShare)
	dangerCount := target - rewardCount

	candidates := make([]Pos, 0, pathCells)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := Pos{X: x, Y: y}
			if m.Get(x, y) == Path && !m.InRoom(p) {
				candidates = append(candidates, p)
			}
		}
	}
	m.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	// occupied holds placed positions plus their orthogonal neighbors,
	// enforcing the exclusion rule.
	occupied := mapset.New[Pos]()
	m.placeVariants(candidates, rewardCount, Rewards, occupied)
	m.placeVariants(candidates, dangerCount, Dangers, occupied)
}

// placeVariants walks the shuffled candidate list placing up to count
// labels drawn uniformly from variants, honoring the exclusion set.
func (m *Maze) placeVariants(candidates []Pos, count int, variants []CellType, occupied mapset.Set[Pos]) {
	placed := 0
	for _, p := range candidates {
		if placed >= count {
			break
		}
		if occupied.Has(p) {
			continue
		}

		m.Set(p.X, p.Y, variants[m.rng.Intn(len(variants))])
		placed++

		occupied.Put(p)
		for _, adj := range [4]Pos{
			{p.X + 1, p.Y}, {p.X - 1, p.Y}, {p.X, p.Y + 1}, {p.X, p.Y - 1},
		} {
			if adj.X >= 0 && adj.X < m.width && adj.Y >= 0 && adj.Y < m.height {
				occupied.Put(adj)
			}
		}
	}
}
