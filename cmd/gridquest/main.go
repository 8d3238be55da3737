// Gridquest is a turn-based exploration game on a wrapping grid.
// Usage: gridquest [-s seed] [-c config] [-m mapfile] [-d] [--plain] [--script <file>] [--trace] [--mute]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	ucli "github.com/urfave/cli/v3"

	"github.com/nathoo/gridquest/audio"
	"github.com/nathoo/gridquest/cli"
	"github.com/nathoo/gridquest/config"
	"github.com/nathoo/gridquest/engine"
	"github.com/nathoo/gridquest/loader"
	"github.com/nathoo/gridquest/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A missing .env is fine; anything else is worth a note.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newCommand(cfg).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newCommand builds the command line, taking defaults from cfg.
func newCommand(cfg *config.Config) *ucli.Command {
	return &ucli.Command{
		Name:    "gridquest",
		Usage:   "find Spock on a wrapping alien planet",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Flags: []ucli.Flag{
			&ucli.Int64Flag{Name: "seed", Aliases: []string{"s"}, Usage: "random seed (default: current time)"},
			&ucli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: cfg.ConfigPath, Usage: "adventure file (.advcfg or .lua)"},
			&ucli.StringFlag{Name: "map", Aliases: []string{"m"}, Value: cfg.MapFile, Usage: "debug map file"},
			&ucli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "print the player location and write the map every turn"},
			&ucli.BoolFlag{Name: "plain", Usage: "line-oriented output instead of the full-screen interface"},
			&ucli.StringFlag{Name: "script", Usage: "play commands from a file (implies --plain)"},
			&ucli.BoolFlag{Name: "trace", Usage: "show effects and events after each command"},
			&ucli.BoolFlag{Name: "mute", Usage: "disable sound"},
			&ucli.StringFlag{Name: "sounds", Value: cfg.SoundsDir, Usage: "directory of .wav cues"},
			&ucli.StringFlag{Name: "log-file", Usage: "write logs here instead of stderr"},
		},
		Action: func(ctx context.Context, cmd *ucli.Command) error {
			return run(cfg, cmd)
		},
	}
}

func run(cfg *config.Config, cmd *ucli.Command) error {
	logOut := io.Writer(os.Stderr)
	if path := cmd.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log, err := config.NewLogger(cfg, logOut)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if cmd.IsSet("seed") {
		seed = cmd.Int64("seed")
	}

	// Load the adventure.
	path := cmd.String("config")
	start := time.Now()
	defs, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading adventure: %w", err)
	}
	log.Debug("adventure loaded", "path", path,
		"rows", defs.Grid.Rows(), "cols", defs.Grid.Cols(), "elapsed", time.Since(start))
	for _, w := range loader.Lint(defs) {
		log.Warn(w, "path", path)
	}

	eng := engine.New(defs, seed)
	eng.Log = log.With("seed", seed)

	mute := cmd.Bool("mute")
	if mute {
		eng.Cues = audio.Silent{}
	} else {
		player := audio.NewWAV(cmd.String("sounds"), log)
		defer player.Close()
		eng.Cues = player
	}

	debug := cmd.Bool("debug")
	mapFile := ""
	if debug {
		mapFile = cmd.String("map")
	}

	// Script mode: open file, force plain, echo commands.
	if script := cmd.String("script"); script != "" {
		f, err := os.Open(script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := newCLI(eng, log, debug, mapFile, cmd.Bool("trace"), !mute)
		c.In = f
		c.EchoInput = true
		c.Run()
		return nil
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if cmd.Bool("plain") || !isTerminal() {
		newCLI(eng, log, debug, mapFile, cmd.Bool("trace"), !mute).Run()
		return nil
	}

	outcome, err := tui.Run(eng, tui.Options{Trace: cmd.Bool("trace"), Debug: debug, MapFile: mapFile})
	if err != nil {
		return err
	}
	log.Info("session ended", "outcome", outcome.String(), "turns", eng.Player.TurnCount)
	return nil
}

func newCLI(eng *engine.Engine, log *slog.Logger, debug bool, mapFile string, trace, linger bool) *cli.CLI {
	c := cli.New(eng)
	c.Log = log
	c.Debug = debug
	c.MapFile = mapFile
	c.Trace = trace
	c.Linger = linger
	return c
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
