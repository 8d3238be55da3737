package mapdump

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/gridquest/engine/grid"
	"github.com/nathoo/gridquest/types"
)

func at(row, col int) types.Coord { return types.Coord{Row: row, Col: col} }

func sampleGrid() *grid.Grid {
	g := grid.New(2, 4)
	g.Set(at(0, 0), &types.Cell{Name: "energy", EnterResult: "phaser"})
	g.Set(at(0, 1), &types.Cell{Name: "beam", EnterResult: "randomMove"})
	g.Set(at(0, 3), &types.Cell{Name: "start"})
	g.Set(at(1, 0), &types.Cell{Name: "spock", EnterResult: "win"})
	g.Set(at(1, 1), &types.Cell{Name: "khan", EnterResult: "lose"})
	g.Set(at(1, 2), &types.Cell{Name: "klingon", EnterResult: "lose"})
	return g
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleGrid(), at(1, 3)))
	assert.Equal(t, ". ~ - - \nS K ! x \n", buf.String())
}

func TestWrite_PlayerCoversCell(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleGrid(), at(1, 0)))
	assert.Equal(t, ". ~ - - \nx K ! - \n", buf.String())
}

func TestGlyph_FollowsEncounterPrecedence(t *testing.T) {
	// Result tags win over names.
	assert.Equal(t, GlyphItem, Glyph(&types.Cell{Name: "khan", EnterResult: "phaser"}))
	assert.Equal(t, GlyphEmpty, Glyph(&types.Cell{Name: "Spock"}))
	assert.Equal(t, GlyphEmpty, Glyph(nil))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	g := grid.New(1, 2)

	require.NoError(t, WriteFile(path, g, at(0, 0)))
	require.NoError(t, WriteFile(path, g, at(0, 1)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "- x \n", string(got))
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "map.txt"), grid.New(1, 1), at(0, 0))
	assert.Error(t, err)
}
