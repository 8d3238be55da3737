// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/gridquest/types"
)

// Verbs produced by Parse.
const (
	VerbGo      = "go"
	VerbNearby  = "nearby"
	VerbCores   = "cores"
	VerbQuit    = "quit"
	VerbUnknown = "unknown"
)

// Single-key controls.
const (
	KeyUp     = "w"
	KeyDown   = "s"
	KeyLeft   = "a"
	KeyRight  = "d"
	KeyNearby = "n"
	KeyCores  = "e"
	KeyQuit   = "q"
)

// Controls is the one-line summary of the single-key controls.
const Controls = "(" + KeyUp + ") Up (" + KeyDown + ") Down (" + KeyLeft + ") Left (" +
	KeyRight + ") Right (" + KeyNearby + ") Nearby (" + KeyCores + ") Display energy cores (" +
	KeyQuit + ") Quit"

var keyCommands = map[string]types.Intent{
	KeyUp:     {Verb: VerbGo, Object: "up"},
	KeyDown:   {Verb: VerbGo, Object: "down"},
	KeyLeft:   {Verb: VerbGo, Object: "left"},
	KeyRight:  {Verb: VerbGo, Object: "right"},
	KeyNearby: {Verb: VerbNearby},
	KeyCores:  {Verb: VerbCores},
	KeyQuit:   {Verb: VerbQuit},
}

// Direction words accepted after "go" or on their own. The single
// letters n and e are taken by nearby and cores.
var directionWords = map[string]string{
	"up":    "up",
	"north": "up",
	"down":  "down",
	"south": "down",
	"left":  "left",
	"west":  "left",
	"right": "right",
	"east":  "right",
}

var verbAliases = map[string]string{
	// Movement
	"go":   VerbGo,
	"walk": VerbGo,
	"move": VerbGo,
	"head": VerbGo,

	// Sensors
	"nearby": VerbNearby,
	"sense":  VerbNearby,
	"scan":   VerbNearby,
	"listen": VerbNearby,
	"look":   VerbNearby,
	"l":      VerbNearby,

	// Energy cores
	"cores":     VerbCores,
	"energy":    VerbCores,
	"inventory": VerbCores,
	"inv":       VerbCores,
	"i":         VerbCores,

	// Quit
	"quit": VerbQuit,
	"exit": VerbQuit,
}

// Parse converts a raw command string into an Intent. Empty input yields
// the zero Intent; anything unrecognized yields VerbUnknown.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	if len(words) == 1 {
		if intent, ok := keyCommands[words[0]]; ok {
			return intent
		}
		if dir, ok := directionWords[words[0]]; ok {
			return types.Intent{Verb: VerbGo, Object: dir}
		}
	}

	verb, ok := verbAliases[words[0]]
	if !ok {
		return types.Intent{Verb: VerbUnknown, Object: strings.Join(words, " ")}
	}

	if verb != VerbGo {
		if len(words) > 1 {
			return types.Intent{Verb: VerbUnknown, Object: strings.Join(words, " ")}
		}
		return types.Intent{Verb: verb}
	}

	// "go" takes exactly one direction, optionally after "to".
	rest := words[1:]
	if len(rest) > 0 && rest[0] == "to" {
		rest = rest[1:]
	}
	if len(rest) != 1 {
		return types.Intent{Verb: VerbGo}
	}
	dir, ok := directionWords[rest[0]]
	if !ok {
		if intent, isKey := keyCommands[rest[0]]; isKey && intent.Verb == VerbGo {
			dir = intent.Object
		}
	}
	return types.Intent{Verb: VerbGo, Object: dir}
}
