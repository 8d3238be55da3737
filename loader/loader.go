// Package loader turns adventure configurations into immutable grid
// definitions. Two formats are understood: the slash-separated line format
// and sandboxed Lua scripts.
package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/gridquest/engine/state"
)

// Load reads the adventure at path. Files ending in .lua are executed as
// scripts; anything else is parsed as the line format.
func Load(path string) (*state.Defs, error) {
	if strings.EqualFold(filepath.Ext(path), ".lua") {
		return LoadLua(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(f, path)
}
