package obj

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Direction is the axis gravity pulls along.
type Direction int

const (
	GravityDown Direction = iota
	GravityUp
	GravityLeft
	GravityRight
)

func (d Direction) String() string {
	switch d {
	case GravityUp:
		return "up"
	case GravityDown:
		return "down"
	case GravityLeft:
		return "left"
	case GravityRight:
		return "right"
	default:
		return "unknown"
	}
}

// Unit returns the unit vector gravity pulls toward.
func (d Direction) Unit() cp.Vector {
	switch d {
	case GravityUp:
		return cp.Vector{X: 0, Y: 1}
	case GravityLeft:
		return cp.Vector{X: -1, Y: 0}
	case GravityRight:
		return cp.Vector{X: 1, Y: 0}
	default:
		return cp.Vector{X: 0, Y: -1}
	}
}

// BodyAngle is the rotation that makes a body stand on the surface gravity
// pushes it toward.
func (d Direction) BodyAngle() float64 {
	switch d {
	case GravityUp:
		return math.Pi
	case GravityLeft:
		return -math.Pi / 2
	case GravityRight:
		return math.Pi / 2
	default:
		return 0
	}
}

// ErrInvalidGravity is returned for zero or diagonal gravity vectors.
var ErrInvalidGravity = errors.New("gravity: vector is not axis aligned")

// DirectionFromVector snaps an axis-aligned vector to its Direction.
func DirectionFromVector(v cp.Vector) (Direction, error) {
	switch {
	case v.X == 0 && v.Y > 0:
		return GravityUp, nil
	case v.X == 0 && v.Y < 0:
		return GravityDown, nil
	case v.Y == 0 && v.X < 0:
		return GravityLeft, nil
	case v.Y == 0 && v.X > 0:
		return GravityRight, nil
	}
	return GravityDown, fmt.Errorf("%w: (%g, %g)", ErrInvalidGravity, v.X, v.Y)
}

// GravityConfig holds the multiplier values and the boost window.
type GravityConfig struct {
	NominalMultiplier  float64 `yaml:"nominal_multiplier"`
	StrongMultiplier   float64 `yaml:"strong_multiplier"`
	WeakMultiplier     float64 `yaml:"weak_multiplier"`
	RevertMultiplier   float64 `yaml:"revert_multiplier"`
	BoostWindow        float64 `yaml:"boost_window"`
	WeakenImpulse      float64 `yaml:"weaken_impulse"`
	LockReleaseImpulse float64 `yaml:"lock_release_impulse"`
}

func DefaultGravityConfig() GravityConfig {
	return GravityConfig{
		NominalMultiplier:  1,
		StrongMultiplier:   50,
		WeakMultiplier:     0,
		RevertMultiplier:   10,
		BoostWindow:        5,
		WeakenImpulse:      1,
		LockReleaseImpulse: 0.01,
	}
}

// GravitySnapshot is an immutable view of the gravity state for one frame.
type GravitySnapshot struct {
	Direction  Direction
	Unit       cp.Vector
	Multiplier float64
}

// Vector returns the effective world gravity.
func (s GravitySnapshot) Vector() cp.Vector {
	return s.Unit.Mult(s.Multiplier)
}

// GravityWorld is the part of the physics world the controller drives.
type GravityWorld interface {
	SetGravity(g cp.Vector)
	SetAllowSleeping(allow bool)
	ApplyImpulseToDynamicBodies(impulse cp.Vector)
}

// Warper receives the visual cue for gravity changes.
type Warper interface {
	Warp()
}

// GravityController owns the world gravity direction and strength.
type GravityController struct {
	cfg    GravityConfig
	world  GravityWorld
	warper Warper

	dir          Direction
	multiplier   float64
	boostActive  bool
	boostElapsed float64
}

// NewGravityController starts with gravity pointing down at the nominal
// multiplier and pushes that to the world.
func NewGravityController(cfg GravityConfig, world GravityWorld, warper Warper) *GravityController {
	g := &GravityController{
		cfg:        cfg,
		world:      world,
		warper:     warper,
		dir:        GravityDown,
		multiplier: cfg.NominalMultiplier,
	}
	g.apply()
	return g
}

func (g *GravityController) warp() {
	if g.warper != nil {
		g.warper.Warp()
	}
}

func (g *GravityController) apply() {
	if g.world != nil {
		g.world.SetGravity(g.dir.Unit().Mult(g.multiplier))
	}
}

// SetStartVector points gravity along an axis-aligned vector without a warp
// cue. Zero or diagonal vectors are rejected and leave the state unchanged.
func (g *GravityController) SetStartVector(v cp.Vector) error {
	if g == nil {
		return nil
	}
	d, err := DirectionFromVector(v)
	if err != nil {
		return err
	}
	g.dir = d
	g.apply()
	return nil
}

// SetDirection points gravity along d. Bodies are woken so none stay resting
// against the old floor.
func (g *GravityController) SetDirection(d Direction) {
	if g == nil {
		return
	}
	g.warp()
	g.dir = d
	if g.world != nil {
		g.world.SetAllowSleeping(false)
	}
	g.apply()
}

// Strengthen raises the multiplier for the boost window.
func (g *GravityController) Strengthen() {
	if g == nil {
		return
	}
	g.warp()
	g.startBoost(g.cfg.StrongMultiplier)
}

// Weaken drops the multiplier for the boost window and kicks every dynamic
// body against the current gravity direction.
func (g *GravityController) Weaken() {
	if g == nil {
		return
	}
	g.warp()
	g.startBoost(g.cfg.WeakMultiplier)
	if g.world != nil {
		g.world.ApplyImpulseToDynamicBodies(g.dir.Unit().Neg().Mult(g.cfg.WeakenImpulse))
	}
}

func (g *GravityController) startBoost(mult float64) {
	g.multiplier = mult
	g.boostActive = true
	g.boostElapsed = 0
}

// Update advances the boost window and pushes gravity to the world. When the
// window closes the multiplier goes to RevertMultiplier, not the nominal one.
func (g *GravityController) Update(dt float64) {
	if g == nil {
		return
	}
	if g.boostActive {
		g.boostElapsed += dt
		if g.boostElapsed >= g.cfg.BoostWindow {
			g.boostActive = false
			g.boostElapsed = 0
			g.multiplier = g.cfg.RevertMultiplier
		}
	}
	g.apply()
}

// Snapshot returns the current gravity state.
func (g *GravityController) Snapshot() GravitySnapshot {
	if g == nil {
		return GravitySnapshot{Direction: GravityDown, Unit: GravityDown.Unit()}
	}
	return GravitySnapshot{
		Direction:  g.dir,
		Unit:       g.dir.Unit(),
		Multiplier: g.multiplier,
	}
}

func (g *GravityController) Direction() Direction {
	if g == nil {
		return GravityDown
	}
	return g.dir
}

func (g *GravityController) Multiplier() float64 {
	if g == nil {
		return 0
	}
	return g.multiplier
}

// BoostActive reports whether a strength change is waiting to revert.
func (g *GravityController) BoostActive() bool {
	return g != nil && g.boostActive
}

// Config returns the controller's tuning.
func (g *GravityController) Config() GravityConfig {
	if g == nil {
		return DefaultGravityConfig()
	}
	return g.cfg
}
