package scene

import (
	"context"
	"log"

	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/obj"
	"github.com/milk9111/gravshift/system"
)

// MainMenu waits for the player to start or quit.
type MainMenu struct{}

func NewMainMenu() *MainMenu { return &MainMenu{} }

func (s *MainMenu) Kind() Kind { return KindMainMenu }
func (s *MainMenu) Enter(m *Manager) {}
func (s *MainMenu) Exit(m *Manager) {}
func (s *MainMenu) Update(m *Manager, in obj.Input, dt float64) {
	switch {
	case in.Pressed(obj.ActionQuit):
		m.Quit()
	case in.Pressed(obj.ActionInteract), in.Pressed(obj.ActionJump):
		m.StartLevel(m.ContinueLevel())
	}
}

// errorHold is how long a failed load stays on screen.
const errorHold = 2.0

// Loading builds a level in the background and shows its status.
type Loading struct {
	Name   string
	Status string
	Err    error

	ch      <-chan system.LoadResult
	cancel  context.CancelFunc
	waited  float64
	handled bool
}

func NewLoading(name string) *Loading {
	return &Loading{Name: name, Status: "Loading " + name}
}

func (s *Loading) Kind() Kind { return KindLoading }

func (s *Loading) Enter(m *Manager) {
	ctx, cancel := context.WithCancel(m.Context())
	s.cancel = cancel
	if m.Loader() == nil {
		s.Err = levels.ErrLevelNotFound
		s.Status = s.Err.Error()
		return
	}
	s.ch = m.Loader().Load(ctx, s.Name)
}

func (s *Loading) Exit(m *Manager) {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Loading) Update(m *Manager, in obj.Input, dt float64) {
	if s.handled {
		return
	}
	if l := m.Loader(); l != nil {
		for drained := false; !drained; {
			select {
			case msg := <-l.Status:
				s.Status = msg
			default:
				drained = true
			}
		}
	}

	if s.Err == nil {
		res, done := system.Poll(s.ch)
		if !done {
			return
		}
		if res.Err == nil {
			s.handled = true
			m.Push(NewLevel(res.World))
			return
		}
		s.Err = res.Err
		s.Status = res.Err.Error()
		log.Printf("scene: load %s: %v", s.Name, res.Err)
	}

	s.waited += dt
	if s.waited >= errorHold {
		s.handled = true
		m.ToMainMenu()
	}
}

// Level plays a loaded world.
type Level struct {
	World *system.World
}

func NewLevel(w *system.World) *Level { return &Level{World: w} }

func (s *Level) Kind() Kind { return KindLevel }
func (s *Level) Enter(m *Manager) {}
func (s *Level) Exit(m *Manager) {
	s.World.Teardown()
}

func (s *Level) Update(m *Manager, in obj.Input, dt float64) {
	if m.Pending() > 0 {
		return
	}
	if in.Pressed(obj.ActionQuit) {
		m.ToMainMenu()
		return
	}
	s.World.Update(in, dt)

	end, final := s.World.End()
	switch end {
	case obj.EndLose:
		m.Push(NewEnd(obj.EndLose, false, s.World.Name))
	case obj.EndWin:
		m.completeLevel(s.World.Name)
		next, err := levels.NextLevelName(s.World.Name)
		if final || err != nil || m.Loader() == nil || !levels.Exists(m.Loader().FS, next) {
			m.Push(NewEnd(obj.EndWin, true, s.World.Name))
			return
		}
		m.StartLevel(next)
	}
}

// End shows the win or lose screen.
type End struct {
	State obj.EndState
	Final bool
	Level string
}

func NewEnd(state obj.EndState, final bool, level string) *End {
	return &End{State: state, Final: final, Level: level}
}

func (s *End) Kind() Kind { return KindEnd }
func (s *End) Enter(m *Manager) {}
func (s *End) Exit(m *Manager) {}

func (s *End) Update(m *Manager, in obj.Input, dt float64) {
	if m.Pending() > 0 {
		return
	}
	switch {
	case in.Pressed(obj.ActionQuit):
		m.ToMainMenu()
	case in.Pressed(obj.ActionInteract), in.Pressed(obj.ActionJump):
		if s.State == obj.EndLose {
			m.Restart()
			return
		}
		m.ToMainMenu()
	}
}
