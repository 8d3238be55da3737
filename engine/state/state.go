// Package state holds the immutable adventure definitions and the
// mutable per-session player state.
package state

import (
	"github.com/nathoo/gridquest/engine/grid"
	"github.com/nathoo/gridquest/types"
)

// Defs holds the immutable adventure loaded from a configuration file.
type Defs struct {
	Title string
	Intro string
	Grid  *grid.Grid
	Start types.Coord
}

// Player is the complete mutable session state.
type Player struct {
	Location    types.Coord
	EnergyCores int
	TurnCount   int
	GameOver    bool
	Outcome     types.Status
	CommandLog  []string
}

// NewPlayer creates a fresh player at the adventure's starting coordinate.
func NewPlayer(defs *Defs) *Player {
	return &Player{
		Location:   defs.Start,
		CommandLog: []string{},
	}
}

// CurrentCell returns the cell under the player, or nil for empty space.
func CurrentCell(p *Player, defs *Defs) *types.Cell {
	return defs.Grid.CellAt(p.Location)
}
