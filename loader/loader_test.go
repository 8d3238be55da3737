package loader

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/gridquest/engine/state"
)

const (
	startrekText = "../adventures/startrek.advcfg"
	startrekLua  = "../adventures/startrek.lua"
)

func TestLoad_StarTrek(t *testing.T) {
	defs, err := Load(startrekText)
	require.NoError(t, err)

	assert.Equal(t, 8, defs.Grid.Rows())
	assert.Equal(t, 8, defs.Grid.Cols())
	assert.Equal(t, at(0, 4), defs.Start)
	assert.Equal(t, "spock", defs.Grid.CellAt(at(2, 2)).Name)
	assert.Equal(t, "randomMove", defs.Grid.CellAt(at(3, 7)).EnterResult)
	assert.Equal(t, "AARGH! An ambush! You submitted to the wrath of Khan!",
		defs.Grid.CellAt(at(5, 5)).EnterText)
	assert.Len(t, defs.Grid.EmptyCells(), 64-12)
	assert.Empty(t, Lint(defs))
}

func TestLoad_LuaMatchesText(t *testing.T) {
	text, err := Load(startrekText)
	require.NoError(t, err)
	script, err := Load(startrekLua)
	require.NoError(t, err)

	assertSameGrid(t, text, script)
	assert.Equal(t, "Star Trek: The Search for Spock", script.Title)
	assert.Contains(t, script.Intro, "Find Spock")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.advcfg")
	require.Error(t, err)

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MissingLuaFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.lua")
	var ce *ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestLoad_Testdata(t *testing.T) {
	tests := []struct {
		file string
		want error
	}{
		{"testdata/nosize.advcfg", ErrNoSize},
		{"testdata/outofbounds.advcfg", ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(tt.file)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func assertSameGrid(t *testing.T, want, got *state.Defs) {
	t.Helper()
	require.Equal(t, want.Grid.Rows(), got.Grid.Rows())
	require.Equal(t, want.Grid.Cols(), got.Grid.Cols())
	assert.Equal(t, want.Start, got.Start)
	for r := 0; r < want.Grid.Rows(); r++ {
		for c := 0; c < want.Grid.Cols(); c++ {
			assert.Equal(t, want.Grid.CellAt(at(r, c)), got.Grid.CellAt(at(r, c)), "cell %d,%d", r, c)
		}
	}
}
