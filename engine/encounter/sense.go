package encounter

import (
	"strings"

	"github.com/nathoo/gridquest/engine/grid"
	"github.com/nathoo/gridquest/types"
)

// DesertedText is reported when no neighbor has anything to say.
const DesertedText = "You find yourself in a lonely, deserted corner of this strange alien planet."

// Sense returns the nearby text of the first neighbor, in random order,
// whose nearby text is not blank.
func Sense(g *grid.Grid, at types.Coord, src grid.Source) string {
	for _, n := range g.Neighbors(at, src) {
		cell := g.CellAt(n)
		if cell != nil && strings.TrimSpace(cell.NearbyText) != "" {
			return cell.NearbyText
		}
	}
	return DesertedText
}
