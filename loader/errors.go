package loader

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by ConfigError.
var (
	ErrNoSize      = errors.New("no size line found")
	ErrBadSize     = errors.New("grid dimensions out of range")
	ErrOutOfBounds = errors.New("coordinate outside grid")
)

// ConfigError reports a configuration that cannot be turned into a grid.
// Line is 0 when the failure is not tied to a particular line.
type ConfigError struct {
	Path string
	Line int
	Err  error
}

func (e *ConfigError) Error() string {
	path := e.Path
	if path == "" {
		path = "config"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// MaxCells bounds rows*cols for a loaded grid.
const MaxCells = 1 << 20

// checkSize rejects dimensions below 1 or above MaxCells in total.
func checkSize(rows, cols int) error {
	if rows < 1 || cols < 1 || rows > MaxCells/cols {
		return fmt.Errorf("%w: %dx%d (want 1 to %d cells)", ErrBadSize, rows, cols, MaxCells)
	}
	return nil
}
