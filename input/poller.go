package input

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gravshift/config"
	"github.com/milk9111/gravshift/obj"
)

var keyByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[k.String()] = k
	}
	return m
}()

var buttonByName = map[string]ebiten.StandardGamepadButton{
	"RightBottom":      ebiten.StandardGamepadButtonRightBottom,
	"RightRight":       ebiten.StandardGamepadButtonRightRight,
	"RightLeft":        ebiten.StandardGamepadButtonRightLeft,
	"RightTop":         ebiten.StandardGamepadButtonRightTop,
	"FrontTopLeft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"FrontTopRight":    ebiten.StandardGamepadButtonFrontTopRight,
	"FrontBottomLeft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"FrontBottomRight": ebiten.StandardGamepadButtonFrontBottomRight,
	"CenterLeft":       ebiten.StandardGamepadButtonCenterLeft,
	"CenterRight":      ebiten.StandardGamepadButtonCenterRight,
	"LeftStick":        ebiten.StandardGamepadButtonLeftStick,
	"RightStick":       ebiten.StandardGamepadButtonRightStick,
	"LeftTop":          ebiten.StandardGamepadButtonLeftTop,
	"LeftBottom":       ebiten.StandardGamepadButtonLeftBottom,
	"LeftLeft":         ebiten.StandardGamepadButtonLeftLeft,
	"LeftRight":        ebiten.StandardGamepadButtonLeftRight,
	"CenterCenter":     ebiten.StandardGamepadButtonCenterCenter,
}

type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

// Poller turns keyboard and gamepad state into an obj.Input once per frame.
type Poller struct {
	bindings map[obj.Action]binding
	gamepads []ebiten.GamepadID
}

// NewPoller resolves binding names. Unknown key or button names are logged
// and skipped.
func NewPoller(b *config.Bindings) *Poller {
	p := &Poller{}
	p.SetBindings(b)
	return p
}

// SetBindings replaces the active bindings, for example after a reload.
func (p *Poller) SetBindings(b *config.Bindings) {
	if p == nil {
		return
	}
	resolved := make(map[obj.Action]binding)
	for action, names := range b.Resolve() {
		var bd binding
		for _, name := range names.Keys {
			k, ok := keyByName[name]
			if !ok {
				log.Printf("input: %s: unknown key %q", action, name)
				continue
			}
			bd.keys = append(bd.keys, k)
		}
		for _, name := range names.Buttons {
			btn, ok := buttonByName[name]
			if !ok {
				log.Printf("input: %s: unknown gamepad button %q", action, name)
				continue
			}
			bd.buttons = append(bd.buttons, btn)
		}
		resolved[action] = bd
	}
	p.bindings = resolved
}

// Poll reads the current device state.
func (p *Poller) Poll() obj.Input {
	var in obj.Input
	if p == nil {
		return in
	}
	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])
	for action, bd := range p.bindings {
		if p.justPressed(bd) {
			in.SetPressed(action)
		}
		if p.held(bd) {
			in.SetHeld(action, true)
		}
		if p.justReleased(bd) {
			in.SetReleased(action)
		}
	}
	return in
}

// Rumble vibrates every gamepad seen by the last Poll for d. Zero
// magnitudes leave the motors alone.
func (p *Poller) Rumble(strong, weak float64, d time.Duration) {
	if p == nil || (strong <= 0 && weak <= 0) {
		return
	}
	for _, id := range p.gamepads {
		ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
			Duration:        d,
			StrongMagnitude: strong,
			WeakMagnitude:   weak,
		})
	}
}

func (p *Poller) justPressed(bd binding) bool {
	for _, k := range bd.keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range bd.buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				return true
			}
		}
	}
	return false
}

func (p *Poller) held(bd binding) bool {
	for _, k := range bd.keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range bd.buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return true
			}
		}
	}
	return false
}

func (p *Poller) justReleased(bd binding) bool {
	for _, k := range bd.keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	for _, id := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range bd.buttons {
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				return true
			}
		}
	}
	return false
}

// Describe lists the bound names of an action, for on-screen hints.
func (p *Poller) Describe(a obj.Action) string {
	if p == nil {
		return ""
	}
	bd, ok := p.bindings[a]
	if !ok || len(bd.keys) == 0 {
		return a.String()
	}
	return fmt.Sprint(bd.keys[0])
}
