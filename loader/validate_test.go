package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint_Clean(t *testing.T) {
	defs, err := parse(t, "2,2/size///", "0,0/start////", "1,1/spock/Win text/win/")
	require.NoError(t, err)
	assert.Empty(t, Lint(defs))
}

func TestLint_UnknownResult(t *testing.T) {
	defs, err := parse(t, "2,2/size///", "0,0/start////", "1,0/trap/Snap!/explode/")
	require.NoError(t, err)

	warnings := Lint(defs)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"explode"`)
	assert.Contains(t, warnings[0], "1,0")
}

func TestLint_ResultTagsAreCaseSensitive(t *testing.T) {
	defs, err := parse(t, "2,2/size///", "0,0/start////", "1,0/beam/Zap/randommove/")
	require.NoError(t, err)
	assert.Len(t, Lint(defs), 1)
}

func TestLint_NoStart(t *testing.T) {
	defs, err := parse(t, "2,2/size///", "1,1/rock////")
	require.NoError(t, err)

	warnings := Lint(defs)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no start cell")
}

func TestLint_NoEmptyCells(t *testing.T) {
	defs, err := parse(t, "1,2/size///", "0,0/start////", "0,1/beam/Zap/randomMove/")
	require.NoError(t, err)

	warnings := Lint(defs)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no empty cells")
}
