// Package engine provides the Step() orchestrator that wires together
// command parsing, movement, encounters and effects into a single turn.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/nathoo/gridquest/engine/effects"
	"github.com/nathoo/gridquest/engine/encounter"
	"github.com/nathoo/gridquest/engine/grid"
	"github.com/nathoo/gridquest/engine/parser"
	"github.com/nathoo/gridquest/engine/state"
	"github.com/nathoo/gridquest/types"
)

// Default adventure metadata, used when the configuration has none.
const (
	DefaultTitle = "Star Trek: The Search for Spock"
	DefaultIntro = "Find Spock on the deserted planet before suffering humiliating defeat at the hands of mighty Khan!\n" +
		"Collect energy cores for your phaser to defend against roving Klingon villains!"
)

// CuePlayer receives audio cues. Play must not block.
type CuePlayer interface {
	Play(cue string)
}

type silentCues struct{}

func (silentCues) Play(string) {}

// Engine holds the adventure definitions and the mutable session state.
type Engine struct {
	Defs   *state.Defs
	Player *state.Player
	RNG    *RNG
	Cues   CuePlayer
	Log    *slog.Logger
}

// New creates a new engine from definitions with a seeded RNG.
// Cues are silent and logs discarded until the caller replaces them.
func New(defs *state.Defs, seed int64) *Engine {
	return &Engine{
		Defs:   defs,
		Player: state.NewPlayer(defs),
		RNG:    NewRNG(seed),
		Cues:   silentCues{},
		Log:    slog.New(slog.DiscardHandler),
	}
}

// Begin produces the welcome text and resolves the starting cell.
func (e *Engine) Begin() types.Result {
	title := e.Defs.Title
	if title == "" {
		title = DefaultTitle
	}
	intro := e.Defs.Intro
	if intro == "" {
		intro = DefaultIntro
	}

	result := types.Result{
		Effects: []types.Effect{effects.Cue(types.CueIntro)},
		Output: []string{
			fmt.Sprintf("Welcome to %s!", title),
			intro,
			"",
			"Controls: " + parser.Controls,
		},
	}
	e.Cues.Play(types.CueIntro)

	enc := e.enter()
	result.Status = enc.Status
	result.Effects = append(result.Effects, enc.Effects...)
	result.Events = append(result.Events, enc.Events...)
	result.Output = append(result.Output, enc.Output...)
	return result
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	// Game over: block all gameplay commands.
	if e.Player.GameOver {
		result.Status = e.Player.Outcome
		result.Output = append(result.Output, "Game over.")
		return result
	}

	intent := parser.Parse(input)
	e.Player.CommandLog = append(e.Player.CommandLog, input)

	switch intent.Verb {
	case parser.VerbGo:
		dir := grid.ParseDirection(intent.Object)
		if dir == grid.NoDirection {
			result.Output = append(result.Output, "Go where? "+parser.Controls)
			break
		}
		from := e.Player.Location
		e.Player.Location = grid.Move(e.Defs.Grid, from, dir)
		e.Log.Debug("player moved", "from", from.String(), "to", e.Player.Location.String(), "direction", dir.String())
		result = e.enter()

	case parser.VerbNearby:
		result.Output = append(result.Output, encounter.Sense(e.Defs.Grid, e.Player.Location, e.RNG))

	case parser.VerbCores:
		result.Output = append(result.Output, fmt.Sprintf("Energy cores: %d", e.Player.EnergyCores))

	case parser.VerbQuit:
		result.Quit = true

	default:
		result.Output = append(result.Output, parser.Controls)
	}

	e.Player.TurnCount++
	return result
}

// enter runs the encounter for the player's current cell and forwards
// its cues to the audio collaborator.
func (e *Engine) enter() types.Result {
	result, err := encounter.Enter(e.Defs.Grid, e.Player, e.RNG)
	if err != nil {
		// Location is unchanged; the game carries on.
		e.Log.Warn("random move failed", "error", err, "location", e.Player.Location.String())
	}
	for _, cue := range effects.Cues(result.Effects) {
		e.Cues.Play(cue)
	}
	return result
}
