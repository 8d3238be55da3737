package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLua_Basic(t *testing.T) {
	defs, err := ParseLua(`
Title "Tiny"
Intro "  Two cells.  "
Size(2, 2)
Cell(0, 1) { name = "Start" }
Cell(1, 1) { name = "spock", enter = "Win text", result = "win", nearby = "Near" }
`, "tiny.lua")
	require.NoError(t, err)

	assert.Equal(t, "Tiny", defs.Title)
	assert.Equal(t, "Two cells.", defs.Intro)
	assert.Equal(t, at(0, 1), defs.Start)
	cell := defs.Grid.CellAt(at(1, 1))
	require.NotNil(t, cell)
	assert.Equal(t, "Win text", cell.EnterText)
	assert.Equal(t, "Near", cell.NearbyText)
}

func TestParseLua_MatchesText(t *testing.T) {
	text, err := Parse(strings.NewReader("3,3/size///\n2,1/start////\n0,0/beam/Zap/randomMove/Hum/\n"), "t")
	require.NoError(t, err)
	script, err := ParseLua(`
Size(3, 3)
Cell(2, 1) { name = "start" }
Cell(0, 0) { name = "beam", enter = "Zap", result = "randomMove", nearby = "Hum" }
`, "t.lua")
	require.NoError(t, err)
	assertSameGrid(t, text, script)
}

func TestParseLua_LastWriteWins(t *testing.T) {
	defs, err := ParseLua(`
Size(1, 2)
for i = 1, 3 do
    Cell(0, 1) { name = "rock" .. i }
end
`, "loop.lua")
	require.NoError(t, err)
	assert.Equal(t, "rock3", defs.Grid.CellAt(at(0, 1)).Name)
}

func TestParseLua_NoSize(t *testing.T) {
	_, err := ParseLua(`Cell(0, 0) { name = "start" }`, "nosize.lua")
	assert.ErrorIs(t, err, ErrNoSize)
}

func TestParseLua_BadSize(t *testing.T) {
	for _, src := range []string{
		`Size(3, 0)`,
		`Size(4096, 4096)`,
		`Size(1, 2^62)`,
	} {
		var err error
		require.NotPanics(t, func() { _, err = ParseLua(src, "bad.lua") }, src)
		assert.ErrorIs(t, err, ErrBadSize, src)
		assert.Contains(t, err.Error(), "bad.lua:1:", src)
	}
}

func TestParseLua_OutOfBounds(t *testing.T) {
	_, err := ParseLua("Size(2, 2)\nCell(5, 0) { name = \"rock\" }\n", "oob.lua")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Contains(t, err.Error(), "oob.lua")
}

func TestParseLua_SyntaxError(t *testing.T) {
	_, err := ParseLua(`Size(2, `, "broken.lua")
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "broken.lua", ce.Path)
}

func TestLoadLua_Sandboxed(t *testing.T) {
	_, err := LoadLua("testdata/sandboxed.lua")
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), "sandboxed.lua:3")
}

func TestParseLua_NoRandomSeed(t *testing.T) {
	_, err := ParseLua(`Size(1, 1) math.randomseed(4)`, "seed.lua")
	assert.Error(t, err)
}
