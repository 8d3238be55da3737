// Package effects implements centralized state mutation via the Apply function.
// Every effect type is one atomic operation. No logic in effects.
package effects

import (
	"github.com/nathoo/gridquest/engine/state"
	"github.com/nathoo/gridquest/types"
)

// Effect types.
const (
	Say       = "say"
	GainCore  = "gain_core"
	SpendCore = "spend_core"
	Teleport  = "teleport"
	PlayCue   = "play_cue"
	EndGame   = "end_game"
)

// Event types.
const (
	CoreGained       = "core_gained"
	CoreSpent        = "core_spent"
	PlayerTeleported = "player_teleported"
	GameEnded        = "game_ended"
)

// SayText builds a say effect.
func SayText(text string) types.Effect {
	return types.Effect{Type: Say, Params: map[string]any{"text": text}}
}

// Cue builds a play_cue effect.
func Cue(name string) types.Effect {
	return types.Effect{Type: PlayCue, Params: map[string]any{"cue": name}}
}

// MoveTo builds a teleport effect.
func MoveTo(to types.Coord) types.Effect {
	return types.Effect{Type: Teleport, Params: map[string]any{"row": to.Row, "col": to.Col}}
}

// End builds an end_game effect.
func End(status types.Status) types.Effect {
	return types.Effect{Type: EndGame, Params: map[string]any{"status": status}}
}

// Apply applies a list of effects to the player, mutating it.
// Returns events emitted and output text collected.
func Apply(p *state.Player, effs []types.Effect) ([]types.Event, []string) {
	var events []types.Event
	var output []string

	for _, eff := range effs {
		switch eff.Type {
		case Say:
			text, _ := eff.Params["text"].(string)
			output = append(output, text)

		case GainCore:
			p.EnergyCores++
			events = append(events, types.Event{
				Type: CoreGained,
				Data: map[string]any{"cores": p.EnergyCores},
			})

		case SpendCore:
			if p.EnergyCores > 0 {
				p.EnergyCores--
			}
			events = append(events, types.Event{
				Type: CoreSpent,
				Data: map[string]any{"cores": p.EnergyCores},
			})

		case Teleport:
			from := p.Location
			p.Location = types.Coord{Row: toInt(eff.Params["row"]), Col: toInt(eff.Params["col"])}
			events = append(events, types.Event{
				Type: PlayerTeleported,
				Data: map[string]any{"from": from, "to": p.Location},
			})

		case EndGame:
			status, _ := eff.Params["status"].(types.Status)
			p.GameOver = true
			p.Outcome = status
			events = append(events, types.Event{
				Type: GameEnded,
				Data: map[string]any{"status": status},
			})

		case PlayCue:
			// Playback belongs to the audio collaborator.

		default:
			// Unknown effect types are ignored.
		}
	}

	return events, output
}

// Cues returns the names of every play_cue effect in order.
func Cues(effs []types.Effect) []string {
	var cues []string
	for _, eff := range effs {
		if eff.Type != PlayCue {
			continue
		}
		if name, ok := eff.Params["cue"].(string); ok {
			cues = append(cues, name)
		}
	}
	return cues
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}
