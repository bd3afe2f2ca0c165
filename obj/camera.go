package obj

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EffectState is the transient effect the camera is playing.
type EffectState int

const (
	EffectNormal EffectState = iota
	EffectShake
	EffectWarp
)

func (s EffectState) String() string {
	switch s {
	case EffectShake:
		return "shake"
	case EffectWarp:
		return "warp"
	default:
		return "normal"
	}
}

// CameraConfig tunes framing and effects. Distances are world units.
type CameraConfig struct {
	Smooth         float64 `yaml:"smooth"`
	AboveOffset    float64 `yaml:"above_offset"`
	Zoom           float64 `yaml:"zoom"`
	WarpTime       float64 `yaml:"warp_time"`
	WarpZoom       float64 `yaml:"warp_zoom"`
	ShakeTime      float64 `yaml:"shake_time"`
	ShakeMagnitude float64 `yaml:"shake_magnitude"`
	// RumbleStrength drives the strong gamepad motor while shaking, 0 to 1.
	RumbleStrength float64 `yaml:"rumble_strength"`
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Smooth:         0.15,
		AboveOffset:    3,
		Zoom:           1,
		WarpTime:       0.2,
		WarpZoom:       0.9,
		ShakeTime:      0.2,
		ShakeMagnitude: 0.25,
		RumbleStrength: 0.6,
	}
}

// Camera frames the player in world space. It knows nothing about pixels; the
// renderer maps its view through WorldToScreen.
type Camera struct {
	PosX float64
	PosY float64

	cfg         CameraConfig
	screenW     float64
	screenH     float64
	unitPixels  float64
	abovePlayer bool

	state    EffectState
	zoom     float64
	warpIn   *gween.Tween
	warpOut  *gween.Tween
	shakeFor float64
	shakeX   float64
	shakeY   float64
	rng      *rand.Rand
}

// NewCamera creates a camera for a screen of the given pixel size, where one
// world unit spans unitPixels pixels at zoom 1.
func NewCamera(cfg CameraConfig, screenW, screenH int, unitPixels float64) *Camera {
	if cfg.Zoom <= 0 {
		cfg.Zoom = 1
	}
	if unitPixels <= 0 {
		unitPixels = 1
	}
	return &Camera{
		cfg:        cfg,
		screenW:    float64(screenW),
		screenH:    float64(screenH),
		unitPixels: unitPixels,
		zoom:       cfg.Zoom,
		rng:        rand.New(rand.NewPCG(7, 11)),
	}
}

// SetAbovePlayer frames the player from above instead of below.
func (c *Camera) SetAbovePlayer(above bool) {
	if c == nil {
		return
	}
	c.abovePlayer = above
}

func (c *Camera) AbovePlayer() bool {
	return c != nil && c.abovePlayer
}

// Warp starts the zoom pulse played on gravity changes.
func (c *Camera) Warp() {
	if c == nil {
		return
	}
	half := float32(c.cfg.WarpTime / 2)
	c.warpIn = gween.New(float32(c.cfg.Zoom), float32(c.cfg.Zoom*c.cfg.WarpZoom), half, ease.OutQuad)
	c.warpOut = gween.New(float32(c.cfg.Zoom*c.cfg.WarpZoom), float32(c.cfg.Zoom), half, ease.InQuad)
	c.state = EffectWarp
}

// Shake jitters the view for the configured time.
func (c *Camera) Shake() {
	if c == nil {
		return
	}
	c.shakeFor = c.cfg.ShakeTime
	if c.state != EffectWarp {
		c.state = EffectShake
	}
}

func (c *Camera) State() EffectState {
	if c == nil {
		return EffectNormal
	}
	return c.state
}

// Rumble is the gamepad motor strength for the current effect. Only a shake
// rumbles; warps are silent.
func (c *Camera) Rumble() (strong, weak float64) {
	if c == nil || c.state != EffectShake {
		return 0, 0
	}
	return math.Max(0, math.Min(1, c.cfg.RumbleStrength)), 0
}

// Update eases toward the target and advances effects.
func (c *Camera) Update(targetX, targetY, dt float64) {
	if c == nil {
		return
	}
	targetY += c.verticalOffset()
	if c.cfg.Smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.cfg.Smooth
		c.PosY += (targetY - c.PosY) * c.cfg.Smooth
	}
	c.updateEffects(dt)
}

// SnapTo jumps straight to the target framing.
func (c *Camera) SnapTo(x, y float64) {
	if c == nil {
		return
	}
	c.PosX = x
	c.PosY = y + c.verticalOffset()
}

func (c *Camera) verticalOffset() float64 {
	if c.abovePlayer {
		return c.cfg.AboveOffset
	}
	return -c.cfg.AboveOffset
}

func (c *Camera) updateEffects(dt float64) {
	step := float32(dt)
	if c.warpIn != nil {
		z, done := c.warpIn.Update(step)
		c.zoom = float64(z)
		if done {
			c.warpIn = nil
		}
	} else if c.warpOut != nil {
		z, done := c.warpOut.Update(step)
		c.zoom = float64(z)
		if done {
			c.warpOut = nil
		}
	}

	c.shakeX, c.shakeY = 0, 0
	if c.shakeFor > 0 {
		c.shakeFor -= dt
		m := c.cfg.ShakeMagnitude
		c.shakeX = (c.rng.Float64()*2 - 1) * m
		c.shakeY = (c.rng.Float64()*2 - 1) * m
	}

	switch {
	case c.warpIn != nil || c.warpOut != nil:
		c.state = EffectWarp
	case c.shakeFor > 0:
		c.state = EffectShake
	default:
		c.state = EffectNormal
		c.zoom = c.cfg.Zoom
	}
}

func (c *Camera) Zoom() float64 {
	if c == nil {
		return 1
	}
	return c.zoom
}

// Scale is the number of pixels one world unit covers right now.
func (c *Camera) Scale() float64 {
	if c == nil {
		return 1
	}
	return c.unitPixels * c.zoom
}

// WorldToScreen maps a world point to screen pixels. World y points up.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	if c == nil {
		return x, y
	}
	s := c.Scale()
	sx := (x-c.PosX-c.shakeX)*s + c.screenW/2
	sy := -(y-c.PosY-c.shakeY)*s + c.screenH/2
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	if c == nil {
		return sx, sy
	}
	s := c.Scale()
	if s == 0 || math.IsNaN(s) {
		return c.PosX, c.PosY
	}
	x := (sx-c.screenW/2)/s + c.PosX + c.shakeX
	y := -(sy-c.screenH/2)/s + c.PosY + c.shakeY
	return x, y
}
