package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/gridquest/engine/grid"
	"github.com/nathoo/gridquest/engine/state"
	"github.com/nathoo/gridquest/types"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during script execution.
type collector struct {
	title  string
	intro  string
	sized  bool
	rows   int
	cols   int
	sizeAt string
	cells  []rawCell
}

// rawCell holds a cell table before compilation.
type rawCell struct {
	row   int
	col   int
	where string // "file:line:" of the Cell call
	table *lua.LTable
}

// LoadLua executes a Lua adventure script and compiles it into
// definitions. The script describes the same grid as the line format:
//
//	Title "Star Trek: The Search for Spock"
//	Intro "Find Spock..."
//	Size(8, 8)
//	Cell(0, 4) { name = "start" }
//	Cell(2, 2) { name = "spock", enter = "...", result = "win", nearby = "..." }
//
// The Lua VM is discarded after loading.
func LoadLua(path string) (*state.Defs, error) {
	return runLua(path, func(L *lua.LState) error { return L.DoFile(path) })
}

// ParseLua is LoadLua for a script held in memory.
func ParseLua(src, name string) (*state.Defs, error) {
	return runLua(name, func(L *lua.LState) error {
		fn, err := L.Load(strings.NewReader(src), name)
		if err != nil {
			return err
		}
		L.Push(fn)
		return L.PCall(0, lua.MultRet, nil)
	})
}

func runLua(path string, exec func(*lua.LState) error) (*state.Defs, error) {
	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := exec(L); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("executing script: %w", err)}
	}

	return compile(coll, path)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	// Table library (table.insert, table.sort, etc.)
	lua.OpenTable(L)
	// String library (string.format, string.rep, etc.)
	lua.OpenString(L)
	// Math library (math.floor, math.max, etc.)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Scripts must not reseed; layouts stay reproducible.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// registerAPI registers the adventure constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Title "..."
	L.SetGlobal("Title", L.NewFunction(func(L *lua.LState) int {
		coll.title = L.CheckString(1)
		return 0
	}))

	// Intro "..."
	L.SetGlobal("Intro", L.NewFunction(func(L *lua.LState) int {
		coll.intro = L.CheckString(1)
		return 0
	}))

	// Size(rows, cols); the last call wins.
	L.SetGlobal("Size", L.NewFunction(func(L *lua.LState) int {
		coll.rows = L.CheckInt(1)
		coll.cols = L.CheckInt(2)
		coll.sized = true
		coll.sizeAt = L.Where(1)
		return 0
	}))

	// Cell(row, col) { ... }: Cell(row, col) returns a function that takes a table.
	L.SetGlobal("Cell", L.NewFunction(func(L *lua.LState) int {
		row := L.CheckInt(1)
		col := L.CheckInt(2)
		where := L.Where(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.cells = append(coll.cells, rawCell{row: row, col: col, where: where, table: tbl})
			return 0
		}))
		return 1
	}))
}

// compile turns collected Lua tables into definitions, in call order so
// a later Cell at the same coordinate wins.
func compile(coll *collector, path string) (*state.Defs, error) {
	if !coll.sized {
		return nil, &ConfigError{Path: path, Err: ErrNoSize}
	}
	if err := checkSize(coll.rows, coll.cols); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("%s %w", coll.sizeAt, err)}
	}

	defs := &state.Defs{
		Title: strings.TrimSpace(coll.title),
		Intro: strings.TrimSpace(coll.intro),
		Grid:  grid.New(coll.rows, coll.cols),
	}

	for _, rc := range coll.cells {
		coord := types.Coord{Row: rc.row, Col: rc.col}
		if !defs.Grid.InBounds(coord) {
			return nil, &ConfigError{Path: path,
				Err: fmt.Errorf("%s %w: %v not in %dx%d", rc.where, ErrOutOfBounds, coord, coll.rows, coll.cols)}
		}
		cell := &types.Cell{
			Name:        strings.TrimSpace(getString(rc.table, "name")),
			EnterText:   strings.TrimSpace(getString(rc.table, "enter")),
			EnterResult: strings.TrimSpace(getString(rc.table, "result")),
			NearbyText:  strings.TrimSpace(getString(rc.table, "nearby")),
		}
		if strings.EqualFold(cell.Name, NameStart) {
			defs.Start = coord
		}
		defs.Grid.Set(coord, cell)
	}

	return defs, nil
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}
