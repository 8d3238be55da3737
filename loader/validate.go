package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/gridquest/engine/encounter"
	"github.com/nathoo/gridquest/engine/state"
	"github.com/nathoo/gridquest/types"
)

// Lint reports suspicious but playable definitions. Nothing it finds
// prevents the game from running.
func Lint(defs *state.Defs) []string {
	var warnings []string
	g := defs.Grid

	// Unrecognized result tags fall back to the name or the empty state.
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := types.Coord{Row: r, Col: c}
			cell := g.CellAt(at)
			if cell == nil || cell.EnterResult == "" {
				continue
			}
			if encounter.ParseTag(cell.EnterResult) == encounter.TagUnknown {
				warnings = append(warnings, fmt.Sprintf(
					"cell %v (%q) has unrecognized result %q", at, cell.Name, cell.EnterResult))
			}
		}
	}

	if start := g.CellAt(defs.Start); start == nil || !strings.EqualFold(start.Name, NameStart) {
		warnings = append(warnings, fmt.Sprintf("no start cell; player begins at %v", defs.Start))
	}

	if len(g.EmptyCells()) == 0 {
		warnings = append(warnings, "grid has no empty cells; random moves will fail")
	}

	return warnings
}
