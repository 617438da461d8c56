package goldminer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
)

// Kind classifies an item.
type Kind int

const (
	Gold Kind = iota
	Stone
)

func (k Kind) String() string {
	if k == Stone {
		return "stone"
	}
	return "gold"
}

// Point values and base weights at level 1.
const (
	BigGoldValue   = 200
	SmallGoldValue = 100
	StoneValue     = -50

	bigGoldSize     = 2.0
	smallGoldSize   = 1.0
	bigGoldWeight   = 2.2
	smallGoldWeight = 1.1
	stoneDensity    = 1.6
)

// Minimum viewport for which items are generated.
const (
	minFieldW = 20
	minFieldH = 10
)

// Item is a collectible on the field.
type Item struct {
	X, Y   float64
	Kind   Kind
	Value  int
	Size   float64 // half-width of the square footprint
	Weight float64 // divides the retract speed
}

// covers reports whether cell (x, y) falls in the item's square footprint
// when the item is centered at (cx, cy).
func (it Item) covers(x, y, cx, cy float64) bool {
	return math.Abs(x-cx) <= it.Size && math.Abs(y-cy) <= it.Size
}

func (it Item) glyph() (rune, core.Color) {
	large := it.Size > 1.5
	switch {
	case it.Kind == Gold && large:
		return '◆', core.ColorBrightYellow
	case it.Kind == Gold:
		return '♦', core.ColorYellow
	case large:
		return '■', core.ColorWhite
	default:
		return '□', core.ColorGray
	}
}

// spawnBounds returns the region items are placed in for a w x h field.
func spawnBounds(w, h int) (minX, maxX, minY, maxY float64) {
	fw, fh := float64(w), float64(h)
	minX = math.Min(10, fw/4)
	maxX = math.Max(fw-10, minX+1)
	minY = math.Min(15, fh/4)
	maxY = math.Max(fh-5, minY+1)
	return minX, maxX, minY, maxY
}

// generateItems builds the item set for a level. Counts and weights grow
// with the level along the difficulty curve.
func generateItems(rng *rand.Rand, w, h, level int, counts config.ItemCounts, dm *config.DifficultyManager) []Item {
	if w < minFieldW || h < minFieldH {
		return nil
	}
	minX, maxX, minY, maxY := spawnBounds(w, h)
	at := func() (float64, float64) {
		return minX + rng.Float64()*(maxX-minX), minY + rng.Float64()*(maxY-minY)
	}

	bigN := dm.Count(counts.BigGold, counts.BigGoldExtra, level)
	smallN := dm.Count(counts.SmallGold, counts.SmallGoldExtra, level)
	stoneN := dm.Count(counts.Stones, counts.StonesExtra, level)

	items := make([]Item, 0, bigN+smallN+stoneN)
	for i := 0; i < bigN; i++ {
		x, y := at()
		items = append(items, Item{
			X: x, Y: y, Kind: Gold, Value: BigGoldValue,
			Size: bigGoldSize, Weight: dm.Weight(bigGoldWeight, level),
		})
	}
	for i := 0; i < smallN; i++ {
		x, y := at()
		items = append(items, Item{
			X: x, Y: y, Kind: Gold, Value: SmallGoldValue,
			Size: smallGoldSize, Weight: dm.Weight(smallGoldWeight, level),
		})
	}
	for i := 0; i < stoneN; i++ {
		x, y := at()
		size := 1 + rng.Float64()
		items = append(items, Item{
			X: x, Y: y, Kind: Stone, Value: StoneValue,
			Size: size, Weight: dm.Weight(size*stoneDensity, level),
		})
	}
	return items
}

func hasGold(items []Item) bool {
	for _, it := range items {
		if it.Kind == Gold {
			return true
		}
	}
	return false
}
