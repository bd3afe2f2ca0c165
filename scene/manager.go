package scene

import (
	"context"
	"log"

	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/obj"
	"github.com/milk9111/gravshift/system"
)

// Kind identifies a scene for the renderer.
type Kind int

const (
	KindMainMenu Kind = iota
	KindLoading
	KindLevel
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindLevel:
		return "level"
	case KindEnd:
		return "end"
	default:
		return "main_menu"
	}
}

// Scene is one screen of the game.
type Scene interface {
	Kind() Kind
	Enter(m *Manager)
	Update(m *Manager, in obj.Input, dt float64)
	Exit(m *Manager)
}

// Manager runs the current scene and switches to queued ones at the start
// of the next update.
type Manager struct {
	ctx      context.Context
	loader   *system.Loader
	store    *system.ProgressStore
	progress system.Progress

	current Scene
	queue   []Scene
	fade    *Fade
	quit    bool
}

// NewManager starts at the main menu. Saved progress is read once here.
func NewManager(ctx context.Context, loader *system.Loader, store *system.ProgressStore) *Manager {
	m := &Manager{ctx: ctx, loader: loader, store: store, fade: NewFade(fadeFrames)}
	if p, err := store.Load(); err != nil {
		log.Printf("scene: %v", err)
	} else {
		m.progress = p
	}
	m.Push(NewMainMenu())
	return m
}

// Push queues a scene.
func (m *Manager) Push(s Scene) {
	if m == nil || s == nil {
		return
	}
	m.queue = append(m.queue, s)
}

// Update switches to the next queued scene, if any, then updates the
// current one.
func (m *Manager) Update(in obj.Input, dt float64) {
	if m == nil {
		return
	}
	m.fade.Update()
	if len(m.queue) > 0 {
		next := m.queue[0]
		m.queue[0] = nil
		m.queue = m.queue[1:]
		if m.current != nil {
			m.current.Exit(m)
		}
		m.current = next
		m.current.Enter(m)
		m.fade.Start()
	}
	if m.current != nil {
		m.current.Update(m, in, dt)
	}
}

func (m *Manager) Current() Scene {
	if m == nil {
		return nil
	}
	return m.current
}

// FadeAlpha is the opacity of the black overlay drawn over the current
// scene.
func (m *Manager) FadeAlpha() float64 {
	if m == nil {
		return 0
	}
	return m.fade.Alpha()
}

// Pending is the number of queued scenes.
func (m *Manager) Pending() int {
	if m == nil {
		return 0
	}
	return len(m.queue)
}

func (m *Manager) Context() context.Context {
	if m == nil || m.ctx == nil {
		return context.Background()
	}
	return m.ctx
}

func (m *Manager) Loader() *system.Loader {
	if m == nil {
		return nil
	}
	return m.loader
}

// StartLevel queues a loading screen for name.
func (m *Manager) StartLevel(name string) {
	m.Push(NewLoading(name))
}

// Restart reloads the level being played or just finished.
func (m *Manager) Restart() {
	if m == nil {
		return
	}
	switch s := m.current.(type) {
	case *Level:
		m.StartLevel(s.World.Name)
	case *End:
		m.StartLevel(s.Level)
	}
}

func (m *Manager) ToMainMenu() {
	m.Push(NewMainMenu())
}

func (m *Manager) Quit() {
	if m == nil {
		return
	}
	m.quit = true
}

// Quitting reports whether the game should exit.
func (m *Manager) Quitting() bool {
	return m != nil && m.quit
}

func (m *Manager) Progress() system.Progress {
	if m == nil {
		return system.Progress{}
	}
	return m.progress
}

// completeLevel records a win and saves it.
func (m *Manager) completeLevel(name string) {
	m.progress.MarkCompleted(name)
	if err := m.store.Save(m.progress); err != nil {
		log.Printf("scene: %v", err)
	}
}

// ContinueLevel is the level after the last one completed, or the first
// level when there is nothing to continue.
func (m *Manager) ContinueLevel() string {
	if m == nil || m.progress.Last == "" || m.loader == nil {
		return levels.FirstLevel
	}
	next, err := levels.NextLevelName(m.progress.Last)
	if err != nil || !levels.Exists(m.loader.FS, next) {
		return levels.FirstLevel
	}
	return next
}
