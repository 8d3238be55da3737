// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the gridquest engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/nathoo/gridquest/audio"
	"github.com/nathoo/gridquest/engine"
	"github.com/nathoo/gridquest/engine/effects"
	"github.com/nathoo/gridquest/mapdump"
	"github.com/nathoo/gridquest/types"
)

// Farewell is printed when the session ends for any reason.
const Farewell = "Thanks for playing!"

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Log       *slog.Logger
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	Debug     bool   // print the player location and rewrite MapFile every turn
	MapFile   string // debug map destination; empty disables the file
	Linger    bool   // pause after an ending so its cue can finish
	Sleep     func(time.Duration)
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
		Log:    eng.Log,
		Sleep:  time.Sleep,
	}
}

// Run shows the welcome, resolves the starting cell, then loops:
// prompt → input → dispatch → output. It returns the final outcome,
// Continue when the player quit or input ran out.
func (c *CLI) Run() types.Status {
	if c.Debug && c.MapFile != "" {
		c.printLine(fmt.Sprintf("DEBUG: Drawing map in %s", c.MapFile))
	}
	result := c.Engine.Begin()
	c.printResult(result)
	c.afterTurn(result)
	if result.Status.Terminal() {
		return c.finish(result)
	}

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				break // /quit
			}
			continue
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		c.afterTurn(result)

		if result.Quit || result.Status.Terminal() {
			return c.finish(result)
		}
	}

	c.printLine(Farewell)
	return c.Engine.Player.Outcome
}

// afterTurn emits trace and debug output for one engine result.
func (c *CLI) afterTurn(result types.Result) {
	if c.Trace {
		c.printTrace(result)
	}
	if !c.Debug {
		return
	}
	loc := c.Engine.Player.Location
	c.printLine(fmt.Sprintf("DEBUG: player location %s", loc))
	if c.MapFile == "" {
		return
	}
	if err := mapdump.WriteFile(c.MapFile, c.Engine.Defs.Grid, loc); err != nil {
		c.logger().Warn("map dump failed", "path", c.MapFile, "error", err)
	}
}

// finish lets an ending cue sound, then says goodbye.
func (c *CLI) finish(result types.Result) types.Status {
	if c.Linger && c.Sleep != nil {
		if d := audio.Linger(effects.Cues(result.Effects)...); d > 0 {
			c.Sleep(d)
		}
	}
	c.printLine(Farewell)
	return result.Status
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/map":
		c.cmdMap()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
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
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	p := c.Engine.Player
	c.printSystem(fmt.Sprintf("Turn: %d", p.TurnCount))
	c.printSystem(fmt.Sprintf("Location: %s", p.Location))
	c.printSystem(fmt.Sprintf("Energy cores: %d", p.EnergyCores))
	c.printSystem(fmt.Sprintf("Seed: %d (draws: %d)", c.Engine.RNG.Seed(), c.Engine.RNG.Position()))
	if p.GameOver {
		c.printSystem(fmt.Sprintf("Outcome: %s", p.Outcome))
	}
}

func (c *CLI) cmdMap() {
	if err := mapdump.Write(c.Out, c.Engine.Defs.Grid, c.Engine.Player.Location); err != nil {
		c.printSystem(fmt.Sprintf("Map failed: %v", err))
	}
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Effects) > 0 {
		c.printSystem(fmt.Sprintf("[trace] Effects: %d", len(result.Effects)))
		for _, e := range result.Effects {
			c.printSystem(fmt.Sprintf("[trace]   %s %v", e.Type, e.Params))
		}
	}
	if len(result.Events) > 0 {
		c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			c.printSystem(fmt.Sprintf("[trace]   %s", e.Type))
		}
	}
}

func (c *CLI) logger() *slog.Logger {
	if c.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Log
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
