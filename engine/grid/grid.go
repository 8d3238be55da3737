// Package grid implements the toroidal board: cell storage, wraparound
// movement, neighbor lookup and random empty-cell selection.
package grid

import (
	"errors"

	"github.com/nathoo/gridquest/types"
)

// ErrNoEmptyCell is returned by RandomEmpty when every cell is occupied.
var ErrNoEmptyCell = errors.New("no empty cell in grid")

// Source is the random source used for neighbor order and teleports.
// *engine.RNG and *math/rand.Rand both satisfy it.
type Source interface {
	Intn(n int) int
}

// Grid is a fixed-size rows × cols board. A nil cell is empty space.
type Grid struct {
	rows  int
	cols  int
	cells [][]*types.Cell
}

// New allocates a grid with every cell empty.
func New(rows, cols int) *Grid {
	cells := make([][]*types.Cell, rows)
	for r := range cells {
		cells[r] = make([]*types.Cell, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c types.Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Set places a cell at c, replacing any previous one. Out-of-bounds
// coordinates are ignored; callers validate before building.
func (g *Grid) Set(c types.Coord, cell *types.Cell) {
	if !g.InBounds(c) {
		return
	}
	g.cells[c.Row][c.Col] = cell
}

// CellAt returns the cell at c, or nil for empty space.
func (g *Grid) CellAt(c types.Coord) *types.Cell {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[c.Row][c.Col]
}

// EmptyCells returns every coordinate without a cell, in row-major order.
func (g *Grid) EmptyCells() []types.Coord {
	var empty []types.Coord
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == nil {
				empty = append(empty, types.Coord{Row: r, Col: c})
			}
		}
	}
	return empty
}

// Neighbors returns the four cardinal neighbors of c in an order drawn
// from src. Each draw removes one remaining direction at random, which
// yields a uniform permutation.
func (g *Grid) Neighbors(c types.Coord, src Source) []types.Coord {
	remaining := []Direction{Up, Down, Left, Right}
	out := make([]types.Coord, 0, len(remaining))
	for len(remaining) > 0 {
		i := src.Intn(len(remaining))
		out = append(out, Move(g, c, remaining[i]))
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	return out
}

// RandomEmpty picks one empty cell uniformly at random.
func RandomEmpty(g *Grid, src Source) (types.Coord, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return types.Coord{}, ErrNoEmptyCell
	}
	return empty[src.Intn(len(empty))], nil
}
