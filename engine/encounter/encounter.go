// Package encounter resolves what happens when the player enters a cell.
// Each call is one pass of the state machine; nothing persists between
// calls except the player state it mutates.
package encounter

import (
	"fmt"
	"strings"

	"github.com/nathoo/gridquest/engine/effects"
	"github.com/nathoo/gridquest/engine/grid"
	"github.com/nathoo/gridquest/engine/state"
	"github.com/nathoo/gridquest/types"
)

// Canned texts.
const (
	QuietText   = "All is quiet..."
	OverrunText = "You were overcome by the Klingon forces!"
	RepelText   = "You blasted the villain with your phaser! An energy core disappeared..."
)

// Enter evaluates the cell under the player and applies its effects.
//
// A teleport with no empty destination still returns a Continue result
// together with grid.ErrNoEmptyCell; the player's location is left
// unchanged and the caller may log the error and carry on.
func Enter(g *grid.Grid, p *state.Player, src grid.Source) (types.Result, error) {
	cell := g.CellAt(p.Location)
	effs, status, err := plan(g, cell, p, src)

	events, output := effects.Apply(p, effs)
	return types.Result{
		Status:  status,
		Effects: effs,
		Events:  events,
		Output:  output,
	}, err
}

// plan builds the effect list for one encounter without mutating anything.
func plan(g *grid.Grid, cell *types.Cell, p *state.Player, src grid.Source) ([]types.Effect, types.Status, error) {
	var effs []types.Effect
	say := func(text string) {
		if strings.TrimSpace(text) != "" {
			effs = append(effs, effects.SayText(text))
		}
	}

	switch Classify(cell) {
	case Item:
		effs = append(effs, types.Effect{Type: effects.GainCore}, effects.Cue(types.CueEnergy))
		say(cell.EnterText)
		return effs, types.Continue, nil

	case Teleport:
		effs = append(effs, effects.Cue(types.CueBeam))
		say(cell.EnterText)
		to, err := grid.RandomEmpty(g, src)
		if err != nil {
			return effs, types.Continue, fmt.Errorf("teleport from %v: %w", p.Location, err)
		}
		effs = append(effs, effects.MoveTo(to))
		return effs, types.Continue, nil

	case Victory:
		effs = append(effs, effects.Cue(types.CueVictory))
		say(cell.EnterText)
		effs = append(effs, effects.End(types.Win))
		return effs, types.Win, nil

	case Defeat:
		effs = append(effs, effects.Cue(types.CueKhan))
		say(cell.EnterText)
		effs = append(effs, effects.End(types.Lose))
		return effs, types.Lose, nil

	case Hostile:
		say(cell.EnterText)
		if p.EnergyCores < 1 {
			effs = append(effs, effects.Cue(types.CueDefeat))
			say(OverrunText)
			effs = append(effs, effects.End(types.Lose))
			return effs, types.Lose, nil
		}
		effs = append(effs, effects.Cue(types.CueAlert), effects.Cue(types.CuePhaser))
		say(RepelText)
		effs = append(effs, types.Effect{Type: effects.SpendCore})
		return effs, types.Continue, nil

	default:
		if cell != nil && strings.TrimSpace(cell.EnterText) != "" {
			say(cell.EnterText)
		} else {
			say(QuietText)
		}
		return effs, types.Continue, nil
	}
}
