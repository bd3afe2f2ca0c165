package system

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"

	"github.com/milk9111/gravshift/config"
	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/obj"
)

// LoadResult is the outcome of one level load. Exactly one of World and Err
// is set.
type LoadResult struct {
	Name  string
	World *World
	Err   error
}

// Loader builds worlds off the main goroutine.
type Loader struct {
	FS      fs.FS
	Tuning  config.Tuning
	Sounds  obj.SoundPlayer
	Seed    uint64
	ScreenW int
	ScreenH int

	// Status carries human readable progress for the loading screen. Sends
	// never block; a slow reader misses messages.
	Status chan string
}

func NewLoader(fsys fs.FS, tuning config.Tuning, seed uint64) *Loader {
	return &Loader{
		FS:     fsys,
		Tuning: tuning,
		Seed:   seed,
		Status: make(chan string, 8),
	}
}

func (l *Loader) status(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	select {
	case l.Status <- msg:
	default:
	}
}

// Rand returns the generator a level is spawned with. It depends only on the
// seed and the level, so a restart replays the same drops.
func (l *Loader) Rand(name string) *rand.Rand {
	n, _ := levels.LevelNumber(name)
	return rand.New(rand.NewPCG(l.Seed, uint64(n)))
}

// Load parses and builds a level in its own goroutine. The returned channel
// receives exactly one result and is then closed. Nothing else touches the
// world until it has been received.
func (l *Loader) Load(ctx context.Context, name string) <-chan LoadResult {
	out := make(chan LoadResult, 1)
	go func() {
		defer close(out)
		out <- l.load(ctx, name)
	}()
	return out
}

func (l *Loader) load(ctx context.Context, name string) LoadResult {
	res := LoadResult{Name: name}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	l.status("Reading %s", name)
	data, err := levels.Load(l.FS, name)
	if err != nil {
		l.status("Failed: %v", err)
		res.Err = err
		return res
	}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	l.status("Building %s", name)
	w, err := NewWorld(name, data, WorldOptions{
		Tuning:  l.Tuning,
		Rand:    l.Rand(name),
		Sounds:  l.Sounds,
		ScreenW: l.ScreenW,
		ScreenH: l.ScreenH,
	})
	if err != nil {
		l.status("Failed: %v", err)
		res.Err = fmt.Errorf("system: build %s: %w", name, err)
		return res
	}
	if err := ctx.Err(); err != nil {
		w.Teardown()
		res.Err = err
		return res
	}

	log.Printf("system: loaded %s: %d statics, %d enemies, %d dynamics", name, len(w.Statics), len(w.Enemies), len(w.Dynamics))
	l.status("Ready")
	res.World = w
	return res
}

// Poll does a non-blocking receive on a load channel. done is true once the
// result has been taken.
func Poll(ch <-chan LoadResult) (LoadResult, bool) {
	select {
	case res, ok := <-ch:
		if !ok {
			return LoadResult{Err: context.Canceled}, true
		}
		return res, true
	default:
		return LoadResult{}, false
	}
}
