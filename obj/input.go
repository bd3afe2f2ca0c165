package obj

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a logical input the game reacts to.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
	ActionGravityUp
	ActionGravityDown
	ActionGravityLeft
	ActionGravityRight
	ActionGravityLock
	ActionGravityStrengthUp
	ActionGravityStrengthDown
	ActionFire
	ActionReload
	ActionInteract
	ActionPause
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionMoveLeft:            "move_left",
	ActionMoveRight:           "move_right",
	ActionJump:                "jump",
	ActionGravityUp:           "gravity_up",
	ActionGravityDown:         "gravity_down",
	ActionGravityLeft:         "gravity_left",
	ActionGravityRight:        "gravity_right",
	ActionGravityLock:         "gravity_lock",
	ActionGravityStrengthUp:   "gravity_strength_up",
	ActionGravityStrengthDown: "gravity_strength_down",
	ActionFire:                "fire",
	ActionReload:              "reload",
	ActionInteract:            "interact",
	ActionPause:               "pause",
	ActionQuit:                "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// ErrUnknownAction is returned by ParseAction for names it does not know.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction resolves an action from its snake_case name.
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a := Action(0); a < actionCount; a++ {
		if actionNames[a] == n {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

type actionSet uint32

func (s actionSet) has(a Action) bool { return s&(1<<uint(a)) != 0 }

func (s *actionSet) set(a Action, on bool) {
	if on {
		*s |= 1 << uint(a)
	} else {
		*s &^= 1 << uint(a)
	}
}

// Input is one frame of action state. Pressed and Released are edges; Held
// is level.
type Input struct {
	pressed  actionSet
	held     actionSet
	released actionSet
}

func (in Input) Pressed(a Action) bool { return in.pressed.has(a) }
func (in Input) Held(a Action) bool { return in.held.has(a) }
func (in Input) Released(a Action) bool { return in.released.has(a) }

// SetPressed marks a press edge. A pressed action is also held.
func (in *Input) SetPressed(a Action) {
	in.pressed.set(a, true)
	in.held.set(a, true)
}

func (in *Input) SetHeld(a Action, held bool) {
	in.held.set(a, held)
}

func (in *Input) SetReleased(a Action) {
	in.released.set(a, true)
	in.held.set(a, false)
}

// Empty reports whether no action is active this frame.
func (in Input) Empty() bool {
	return in.pressed == 0 && in.held == 0 && in.released == 0
}

// Press builds an Input with the given actions pressed.
func Press(actions ...Action) Input {
	var in Input
	for _, a := range actions {
		in.SetPressed(a)
	}
	return in
}

// Hold builds an Input with the given actions held.
func Hold(actions ...Action) Input {
	var in Input
	for _, a := range actions {
		in.SetHeld(a, true)
	}
	return in
}
