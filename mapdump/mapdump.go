// Package mapdump renders the grid as a glyph map for debugging.
package mapdump

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nathoo/gridquest/engine/encounter"
	"github.com/nathoo/gridquest/engine/grid"
	"github.com/nathoo/gridquest/types"
)

// Glyphs.
const (
	GlyphPlayer   = 'x'
	GlyphEmpty    = '-'
	GlyphItem     = '.'
	GlyphTeleport = '~'
	GlyphVictory  = 'S'
	GlyphDefeat   = 'K'
	GlyphHostile  = '!'
)

// Glyph returns the map character for a cell as the encounter engine
// would treat it.
func Glyph(cell *types.Cell) rune {
	switch encounter.Classify(cell) {
	case encounter.Item:
		return GlyphItem
	case encounter.Teleport:
		return GlyphTeleport
	case encounter.Victory:
		return GlyphVictory
	case encounter.Defeat:
		return GlyphDefeat
	case encounter.Hostile:
		return GlyphHostile
	default:
		return GlyphEmpty
	}
}

// Write renders one line per row, every glyph followed by a space. The
// player's glyph replaces whatever is under them.
func Write(w io.Writer, g *grid.Grid, player types.Coord) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := types.Coord{Row: r, Col: c}
			glyph := Glyph(g.CellAt(at))
			if at == player {
				glyph = GlyphPlayer
			}
			bw.WriteRune(glyph)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile replaces the file at path with the rendered map.
func WriteFile(path string, g *grid.Grid, player types.Coord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing map: %w", err)
	}
	if err := Write(f, g, player); err != nil {
		f.Close()
		return fmt.Errorf("writing map %s: %w", path, err)
	}
	return f.Close()
}
