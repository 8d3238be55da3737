package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nathoo/gridquest/engine/grid"
	"github.com/nathoo/gridquest/engine/state"
	"github.com/nathoo/gridquest/types"
)

// NameStart marks the player's starting cell. Matching ignores case.
const NameStart = "start"

// Field positions within the part of a line after the coordinates.
const (
	fieldName = iota
	fieldEnterText
	fieldEnterResult
	fieldNearbyText
	numFields
)

// Parse reads an adventure in the line format
//
//	<row>,<col>/<name>/<enterText>/<enterResult>/<nearbyText>/
//
// The first line with valid coordinates gives the grid size; every later
// one places a cell. Lines without a '/' or without a coordinate pair
// before it are ignored. path is used only in error messages.
func Parse(r io.Reader, path string) (*state.Defs, error) {
	var defs *state.Defs

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, &ConfigError{Path: path, Line: lineNo + 1, Err: readErr}
		}
		if readErr == io.EOF && line == "" {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		sep := strings.Index(line, "/")
		if sep < 0 {
			continue
		}
		coord, ok := ParseCoordinates(line[:sep])
		if !ok {
			continue
		}
		fields := ParseFields(line[sep+1:])

		if defs == nil {
			if err := checkSize(coord.Row, coord.Col); err != nil {
				return nil, &ConfigError{Path: path, Line: lineNo, Err: err}
			}
			defs = &state.Defs{Grid: grid.New(coord.Row, coord.Col)}
			continue
		}

		if !defs.Grid.InBounds(coord) {
			return nil, &ConfigError{Path: path, Line: lineNo,
				Err: fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, coord, defs.Grid.Rows(), defs.Grid.Cols())}
		}
		cell := cellFromFields(fields)
		if strings.EqualFold(cell.Name, NameStart) {
			defs.Start = coord
		}
		defs.Grid.Set(coord, cell)
	}
	if defs == nil {
		return nil, &ConfigError{Path: path, Err: ErrNoSize}
	}
	return defs, nil
}

// ParseCoordinates extracts a row,col pair from the text before the first
// '/'. The first comma must not lead the string and must sit between two
// digits; row is the first run of digits before it and col the run that
// follows it. Anything else is not a coordinate.
func ParseCoordinates(s string) (types.Coord, bool) {
	comma := strings.Index(s, ",")
	if comma <= 0 || comma+1 >= len(s) {
		return types.Coord{}, false
	}
	if !isDigit(s[comma-1]) || !isDigit(s[comma+1]) {
		return types.Coord{}, false
	}

	row, ok := firstNumber(s[:comma])
	if !ok {
		return types.Coord{}, false
	}
	col, ok := firstNumber(s[comma+1:])
	if !ok {
		return types.Coord{}, false
	}
	return types.Coord{Row: row, Col: col}, true
}

// ParseFields splits the text after the coordinates on '/' into exactly
// four trimmed fields. Missing fields are empty; anything past the fourth
// separator is dropped.
func ParseFields(s string) []string {
	fields := make([]string, numFields)
	for i, part := range strings.SplitN(s, "/", numFields+1) {
		if i == numFields {
			break
		}
		fields[i] = strings.TrimSpace(part)
	}
	return fields
}

func cellFromFields(fields []string) *types.Cell {
	return &types.Cell{
		Name:        fields[fieldName],
		EnterText:   fields[fieldEnterText],
		EnterResult: fields[fieldEnterResult],
		NearbyText:  fields[fieldNearbyText],
	}
}

// firstNumber returns the value of the first run of ASCII digits in s.
func firstNumber(s string) (int, bool) {
	start := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
