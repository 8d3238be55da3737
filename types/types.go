// Package types defines the shared data structures for the gridquest engine.
// This package contains only type definitions and their trivial accessors.
package types

import "fmt"

// Coord is a (row, column) location in the grid.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Cell is the content of one grid location. Empty space is a nil *Cell.
type Cell struct {
	Name        string
	EnterText   string
	EnterResult string
	NearbyText  string
}

// Status is the outcome of a single game step.
type Status int

const (
	Continue Status = iota
	Win
	Lose
)

func (s Status) String() string {
	switch s {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "continue"
	}
}

// Terminal reports whether the status ends the session.
func (s Status) Terminal() bool {
	return s == Win || s == Lose
}

// Audio cue names. Each matches the base name of a bundled sound file.
const (
	CueIntro   = "boldly_go"
	CueEnergy  = "energy"
	CueBeam    = "beam"
	CueVictory = "spock"
	CueKhan    = "khan"
	CueDefeat  = "klingon"
	CueAlert   = "alert"
	CuePhaser  = "phaser"
)

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // direction for "go"
}

// Effect is a single atomic state mutation instruction.
type Effect struct {
	Type   string
	Params map[string]any
}

// Event is emitted after effects are applied.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single game step.
type Result struct {
	Status  Status
	Quit    bool // the player asked to end the session
	Effects []Effect
	Events  []Event
	Output  []string
}
