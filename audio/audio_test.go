package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nathoo/gridquest/types"
)

func TestLinger(t *testing.T) {
	assert.Equal(t, 4200*time.Millisecond, Linger(types.CueVictory))
	assert.Equal(t, 1500*time.Millisecond, Linger(types.CueKhan))
	assert.Equal(t, 3000*time.Millisecond, Linger(types.CueDefeat))
	assert.Zero(t, Linger(types.CueEnergy, types.CueBeam))
	assert.Zero(t, Linger())
}

func TestLinger_Longest(t *testing.T) {
	assert.Equal(t, 3000*time.Millisecond, Linger(types.CueAlert, types.CueDefeat, types.CueKhan))
}

func TestSilent(t *testing.T) {
	var p Player = Silent{}
	assert.NotPanics(t, func() { p.Play(types.CueIntro) })
}

func TestWAV_MissingFileIsSkipped(t *testing.T) {
	w := NewWAV(t.TempDir(), nil)
	w.Play(types.CueBeam)
	w.Play(types.CueBeam)

	assert.Nil(t, w.ctx, "audio device must not open without a file")
	assert.Contains(t, w.data, types.CueBeam)
	assert.NoError(t, w.Close())
}

func TestWAV_LoadCachesBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, types.CueEnergy+".wav")
	assert.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))

	w := NewWAV(dir, nil)
	raw, ok := w.load(types.CueEnergy)
	assert.True(t, ok)
	assert.Equal(t, []byte("RIFF"), raw)

	assert.NoError(t, os.Remove(path))
	raw, ok = w.load(types.CueEnergy)
	assert.True(t, ok, "second load is served from the cache")
	assert.Equal(t, []byte("RIFF"), raw)
}

func TestWAV_UndecodableFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, types.CueAlert+".wav"), []byte("not a wav"), 0o644))

	w := NewWAV(dir, nil)
	w.Play(types.CueAlert)
	assert.Nil(t, w.ctx)
	assert.Empty(t, w.playing)
}
