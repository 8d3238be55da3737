package grid

import "github.com/nathoo/gridquest/types"

// Direction is one of the four cardinal moves.
type Direction int

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "none"
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return NoDirection
	}
}

// ParseDirection maps a canonical token ("up", "down", "left", "right")
// to a Direction. Unknown tokens return NoDirection.
func ParseDirection(token string) Direction {
	for d, name := range directionNames {
		if name == token {
			return d
		}
	}
	return NoDirection
}

// Move returns the coordinate one step from c in direction d, wrapping
// around every edge. An unknown direction returns c unchanged.
func Move(g *Grid, c types.Coord, d Direction) types.Coord {
	switch d {
	case Up:
		if c.Row == 0 {
			c.Row = g.rows - 1
		} else {
			c.Row--
		}
	case Down:
		if c.Row == g.rows-1 {
			c.Row = 0
		} else {
			c.Row++
		}
	case Left:
		if c.Col == 0 {
			c.Col = g.cols - 1
		} else {
			c.Col--
		}
	case Right:
		if c.Col == g.cols-1 {
			c.Col = 0
		} else {
			c.Col++
		}
	}
	return c
}
