// Package audio plays the short WAV cues that accompany encounters.
package audio

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/nathoo/gridquest/types"
)

// SampleRate is the rate every cue is resampled to.
const SampleRate = 44100

// Player plays named cues. Play returns without waiting for the sound.
type Player interface {
	Play(cue string)
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(string) {}

// linger is how long an ending cue is allowed to sound before the session
// closes.
var linger = map[string]time.Duration{
	types.CueVictory: 4200 * time.Millisecond,
	types.CueKhan:    1500 * time.Millisecond,
	types.CueDefeat:  3000 * time.Millisecond,
}

// Linger returns the longest pause any of the cues asks for, or zero.
func Linger(cues ...string) time.Duration {
	var d time.Duration
	for _, cue := range cues {
		d = max(d, linger[cue])
	}
	return d
}

// WAV plays <dir>/<cue>.wav through the system audio device. Missing
// files are skipped; files that fail to decode are logged and skipped.
type WAV struct {
	dir string
	log *slog.Logger

	once sync.Once
	ctx  *ebaudio.Context

	mu      sync.Mutex
	data    map[string][]byte
	playing []*ebaudio.Player
}

// NewWAV returns a player reading cues from dir. The audio device is
// opened on the first cue that decodes.
func NewWAV(dir string, log *slog.Logger) *WAV {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &WAV{dir: dir, log: log, data: make(map[string][]byte)}
}

// Play starts the cue and returns immediately.
func (w *WAV) Play(cue string) {
	raw, ok := w.load(cue)
	if !ok {
		return
	}

	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(raw))
	if err != nil {
		w.log.Warn("decoding cue", "cue", cue, "error", err)
		return
	}

	w.once.Do(func() { w.ctx = ebaudio.NewContext(SampleRate) })
	p, err := w.ctx.NewPlayer(stream)
	if err != nil {
		w.log.Warn("starting cue", "cue", cue, "error", err)
		return
	}
	p.Play()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.prune()
	// Players stop when garbage collected; keep them until they finish.
	w.playing = append(w.playing, p)
}

// load returns the cached bytes for cue, reading the file once.
func (w *WAV) load(cue string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if raw, ok := w.data[cue]; ok {
		return raw, raw != nil
	}

	path := filepath.Join(w.dir, cue+".wav")
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.log.Debug("no sound for cue", "cue", cue, "path", path)
		} else {
			w.log.Warn("reading cue", "cue", cue, "path", path, "error", err)
		}
		raw = nil
	}
	w.data[cue] = raw
	return raw, raw != nil
}

// prune drops players that have finished. Caller holds mu.
func (w *WAV) prune() {
	live := w.playing[:0]
	for _, p := range w.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	w.playing = live
}

// Close stops every cue still sounding.
func (w *WAV) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var errs []error
	for _, p := range w.playing {
		errs = append(errs, p.Close())
	}
	w.playing = nil
	return errors.Join(errs...)
}
