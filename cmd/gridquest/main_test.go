package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/gridquest/config"
	"github.com/nathoo/gridquest/loader"
)

const adventure = "../../adventures/startrek.advcfg"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	cfg.LogLevel = "error"
	return cfg
}

func TestCommand_ScriptRun(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "moves.txt")
	require.NoError(t, os.WriteFile(script, []byte("# look around\nn\ne\nq\n"), 0o644))
	mapFile := filepath.Join(dir, "map.txt")

	err := newCommand(testConfig(t)).Run(context.Background(), []string{
		"gridquest", "--mute", "-s", "1", "-c", adventure,
		"--script", script, "-d", "-m", mapFile,
		"--log-file", filepath.Join(dir, "game.log"),
	})
	require.NoError(t, err)

	got, err := os.ReadFile(mapFile)
	require.NoError(t, err)
	assert.Contains(t, string(got), "x")
}

func TestCommand_LuaAdventure(t *testing.T) {
	script := filepath.Join(t.TempDir(), "moves.txt")
	require.NoError(t, os.WriteFile(script, []byte("q\n"), 0o644))

	err := newCommand(testConfig(t)).Run(context.Background(), []string{
		"gridquest", "--mute", "-c", "../../adventures/startrek.lua", "--script", script,
	})
	assert.NoError(t, err)
}

func TestCommand_MissingAdventure(t *testing.T) {
	err := newCommand(testConfig(t)).Run(context.Background(), []string{
		"gridquest", "--mute", "--plain", "-c", filepath.Join(t.TempDir(), "nope.advcfg"),
	})
	require.Error(t, err)
	var ce *loader.ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestCommand_Defaults(t *testing.T) {
	cfg := testConfig(t)
	cmd := newCommand(cfg)
	names := map[string]bool{}
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}
	for _, want := range []string{"s", "seed", "c", "config", "m", "map", "d", "debug", "plain", "script", "trace", "mute", "log-file"} {
		assert.True(t, names[want], "flag %q", want)
	}
}
