package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/gridquest/engine/encounter"
	"github.com/nathoo/gridquest/engine/parser"
	"github.com/nathoo/gridquest/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	styleControls = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleQuiet = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	styleDistant = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleVictory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	styleDefeat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindTitle
	kindControls
	kindQuiet
	kindDistant
	kindSystem
	kindVictory
	kindDefeat
	kindTrace
	kindInput // echoed player command
	kindMeta  // meta-command output, shown in brackets
)

// classifyLine determines what kind of output line this is from its text.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "Welcome to "):
		return kindTitle
	case strings.HasPrefix(line, "Controls:"),
		strings.HasSuffix(line, parser.Controls),
		strings.HasPrefix(line, "Energy cores:"):
		return kindControls
	case line == encounter.QuietText, line == encounter.DesertedText:
		return kindQuiet
	case containsQuotedSpeech(line):
		return kindDistant
	default:
		return kindNarrative
	}
}

// classifyResultLine styles the lines of a finished game by outcome.
func classifyResultLine(line string, status types.Status) lineKind {
	switch status {
	case types.Win:
		return kindVictory
	case types.Lose:
		return kindDefeat
	default:
		return classifyLine(line)
	}
}

// containsQuotedSpeech reports whether the line carries a double-quoted
// phrase of more than a couple of characters.
func containsQuotedSpeech(line string) bool {
	open := strings.IndexByte(line, '"')
	if open < 0 {
		return false
	}
	end := strings.IndexByte(line[open+1:], '"')
	return end > 2
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindTitle:
		return styleTitle.Render(line)
	case kindControls:
		return styleControls.Render(line)
	case kindQuiet:
		return styleQuiet.Render(line)
	case kindDistant:
		return styleDistant.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindVictory:
		return styleVictory.Render(line)
	case kindDefeat:
		return styleDefeat.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	case kindInput:
		return stylePlayerInput.Render(line)
	case kindMeta:
		return styledSystemMsg(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
