package tui

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nathoo/gridquest/engine"
	"github.com/nathoo/gridquest/mapdump"
	"github.com/nathoo/gridquest/types"
)

// Farewell closes every session.
const Farewell = "Thanks for playing!"

// Options configures a Model beyond its engine.
type Options struct {
	Trace   bool
	Debug   bool   // show the player location after every turn and rewrite MapFile
	MapFile string // debug map destination; empty disables the file
}

// transcriptLine is one unstyled transcript line. Lines are re-wrapped and
// re-styled whenever the terminal is resized.
type transcriptLine struct {
	text string
	kind lineKind
}

// Model is the Bubble Tea model for the gridquest TUI.
type Model struct {
	engine *engine.Engine
	opts   Options
	log    *slog.Logger

	viewport viewport.Model
	input    textinput.Model
	history  *History

	lines []transcriptLine

	width    int
	height   int
	ready    bool
	trace    bool
	started  bool // Begin has run
	over     bool // a terminal outcome was reached; Enter exits
	quitting bool
}

// startMsg asks Update to run the engine's opening turn.
type startMsg struct{}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	log := eng.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return Model{
		engine:  eng,
		opts:    opts,
		log:     log,
		input:   ti,
		history: NewHistory(100),
		trace:   opts.Trace,
	}
}

// Run starts the Bubble Tea program and returns the final outcome.
func Run(eng *engine.Engine, opts Options) (types.Status, error) {
	p := tea.NewProgram(New(eng, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return eng.Player.Outcome, err
}

// Init schedules the opening turn. The engine is only ever touched from
// Update.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return startMsg{} })
}

// Update handles window resizes, the opening turn and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case startMsg:
		m = m.begin()

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := max(height-2, 1) // status bar and input line
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap = viewportKeyMap()
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.refresh()
}

// begin runs the welcome and the start cell encounter once.
func (m Model) begin() Model {
	if m.started {
		return m
	}
	m.started = true
	if m.opts.Debug && m.opts.MapFile != "" {
		m.lines = append(m.lines, transcriptLine{text: fmt.Sprintf("DEBUG: Drawing map in %s", m.opts.MapFile), kind: kindTrace})
	}
	return m.record("", m.engine.Begin())
}

// handleKey reports whether the key was consumed here rather than by
// the text input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit, true

	case "enter":
		if m.over {
			m.quitting = true
			return m, tea.Quit, true
		}
		next, cmd := m.submit()
		return next, cmd, true

	case "up":
		if prev, ok := m.history.Prev(); ok {
			m.setInput(prev)
		}
		return m, nil, true

	case "down":
		next, ok := m.history.Next()
		if !ok {
			m.history.ResetCursor()
		}
		m.setInput(next)
		return m, nil, true

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true
	}
	return m, nil, false
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// submit plays the typed command: a meta command or one engine turn.
func (m Model) submit() (Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m = m.begin()

	m.history.Push(input)
	m.history.ResetCursor()

	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m.lines = append(m.lines, transcriptLine{text: "> " + input, kind: kindInput})
		for _, text := range output {
			m.lines = append(m.lines, transcriptLine{text: text, kind: kindMeta})
		}
		m.lines = append(m.lines, transcriptLine{})
		m.refresh()
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	result := m.engine.Step(input)
	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m.record(input, result), nil
}

// record appends one turn to the transcript: the echoed command, the
// engine output, then trace, debug and ending lines.
func (m Model) record(input string, result types.Result) Model {
	if input != "" {
		m.lines = append(m.lines, transcriptLine{text: "> " + input, kind: kindInput})
	}
	for _, text := range result.Output {
		m.lines = append(m.lines, transcriptLine{text: text, kind: classifyResultLine(text, result.Status)})
	}
	if m.trace {
		for _, text := range m.formatTrace(result) {
			m.lines = append(m.lines, transcriptLine{text: text, kind: kindTrace})
		}
	}
	if m.opts.Debug {
		loc := m.engine.Player.Location
		m.lines = append(m.lines, transcriptLine{text: fmt.Sprintf("DEBUG: player location %s", loc), kind: kindTrace})
		if m.opts.MapFile != "" {
			if err := mapdump.WriteFile(m.opts.MapFile, m.engine.Defs.Grid, loc); err != nil {
				m.log.Warn("map dump failed", "path", m.opts.MapFile, "error", err)
			}
		}
	}
	if result.Status.Terminal() && !m.over {
		m.over = true
		m.lines = append(m.lines,
			transcriptLine{text: Farewell, kind: kindNarrative},
			transcriptLine{text: "[Press Enter to exit.]", kind: kindSystem})
	}
	m.lines = append(m.lines, transcriptLine{})
	m.refresh()
	return m
}

// refresh re-wraps and re-styles the transcript at the current width.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	width := max(m.width, 10)

	styled := make([]string, len(m.lines))
	for i, l := range m.lines {
		if l.text != "" {
			styled[i] = renderLineKind(wordwrap.String(l.text, width), l.kind)
		}
	}
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders the transcript, status bar and input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true
	case "/help":
		return m.cmdHelp(), false
	case "/state":
		return m.cmdState(), false
	case "/map":
		return m.cmdMap(), false
	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false
	}
	return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /quit   Exit game",
		"  /help   Show this help",
		"  /state  Debug: dump current state",
		"  /map    Debug: draw the map",
		"  /trace  Toggle debug trace output",
		"",
		"Game commands:",
		"  w / s / a / d     Move up, down, left, right (or go <direction>)",
		"  n                 Listen for anything nearby",
		"  e                 Display energy cores",
		"  q                 Quit",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

func (m *Model) cmdState() []string {
	p := m.engine.Player
	output := []string{
		fmt.Sprintf("Turn: %d", p.TurnCount),
		fmt.Sprintf("Location: %s", p.Location),
		fmt.Sprintf("Energy cores: %d", p.EnergyCores),
		fmt.Sprintf("Seed: %d (draws: %d)", m.engine.RNG.Seed(), m.engine.RNG.Position()),
	}
	if p.GameOver {
		output = append(output, fmt.Sprintf("Outcome: %s", p.Outcome))
	}
	return output
}

func (m *Model) cmdMap() []string {
	var buf bytes.Buffer
	if err := mapdump.Write(&buf, m.engine.Defs.Grid, m.engine.Player.Location); err != nil {
		return []string{fmt.Sprintf("Map failed: %v", err)}
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func (m *Model) formatTrace(result types.Result) []string {
	var lines []string
	if len(result.Effects) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Effects: %d", len(result.Effects)))
		for _, e := range result.Effects {
			lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Params))
		}
	}
	if len(result.Events) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			lines = append(lines, fmt.Sprintf("[trace]   %s", e.Type))
		}
	}
	return lines
}

// viewportKeyMap leaves Up/Down to the command history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
