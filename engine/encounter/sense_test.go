package encounter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nathoo/gridquest/engine/grid"
	"github.com/nathoo/gridquest/types"
)

func TestSense_Deserted(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(at(0, 1), &types.Cell{Name: "rock", NearbyText: "   "})
	assert.Equal(t, DesertedText, Sense(g, at(1, 1), seeded()))
}

func TestSense_SingleNeighbor(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(at(1, 2), &types.Cell{Name: "klingon", NearbyText: "vaQ!"})
	for seed := int64(0); seed < 10; seed++ {
		assert.Equal(t, "vaQ!", Sense(g, at(1, 1), rand.New(rand.NewSource(seed))))
	}
}

func TestSense_WrapsAroundEdges(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(at(2, 0), &types.Cell{Name: "spock", NearbyText: "Vulcans never bluff..."})
	assert.Equal(t, "Vulcans never bluff...", Sense(g, at(0, 0), seeded()))
}

func TestSense_IgnoresOwnCell(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(at(1, 1), &types.Cell{Name: "energy", NearbyText: "beep"})
	assert.Equal(t, DesertedText, Sense(g, at(1, 1), seeded()))
}

func TestSense_RandomOrderCoversAllNeighbors(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(at(0, 1), &types.Cell{NearbyText: "north"})
	g.Set(at(2, 1), &types.Cell{NearbyText: "south"})
	g.Set(at(1, 0), &types.Cell{NearbyText: "west"})
	g.Set(at(1, 2), &types.Cell{NearbyText: "east"})

	src := rand.New(rand.NewSource(3))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Sense(g, at(1, 1), src)] = true
	}
	assert.Len(t, seen, 4)
}
