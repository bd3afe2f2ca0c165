package obj

import (
	"testing"

	"github.com/milk9111/gravshift/common"
)

func TestCameraFraming(t *testing.T) {
	cfg := DefaultCameraConfig()
	cfg.Smooth = 0
	c := NewCamera(cfg, 800, 600, 10)

	c.SetAbovePlayer(true)
	if !c.AbovePlayer() {
		t.Fatalf("expected above")
	}
	c.Update(5, 5, common.FrameTime)
	if c.PosX != 5 || c.PosY != 5+cfg.AboveOffset {
		t.Fatalf("above: pos = (%v, %v)", c.PosX, c.PosY)
	}
	c.SetAbovePlayer(false)
	c.Update(5, 5, common.FrameTime)
	if c.PosY != 5-cfg.AboveOffset {
		t.Fatalf("below: pos y = %v", c.PosY)
	}
}

func TestCameraWorldScreenRoundTrip(t *testing.T) {
	c := NewCamera(DefaultCameraConfig(), 800, 600, 10)
	c.SnapTo(3, 4)
	sx, sy := c.WorldToScreen(c.PosX, c.PosY)
	if sx != 400 || sy != 300 {
		t.Fatalf("camera centre maps to (%v, %v)", sx, sy)
	}
	_, above := c.WorldToScreen(c.PosX, c.PosY+1)
	if above >= sy {
		t.Fatalf("world up should be screen up")
	}
	x, y := c.ScreenToWorld(c.WorldToScreen(7, -2))
	if !common.NearlyEqual(x, 7, 1e-9) || !common.NearlyEqual(y, -2, 1e-9) {
		t.Fatalf("round trip = (%v, %v)", x, y)
	}
}

func TestCameraEffects(t *testing.T) {
	c := NewCamera(DefaultCameraConfig(), 800, 600, 10)
	c.Warp()
	if c.State() != EffectWarp {
		t.Fatalf("state = %v, want warp", c.State())
	}
	c.Update(0, 0, 0.05)
	if c.Zoom() >= 1 {
		t.Fatalf("zoom = %v, want below 1 mid warp", c.Zoom())
	}
	for i := 0; i < 20; i++ {
		c.Update(0, 0, 0.05)
	}
	if c.State() != EffectNormal || c.Zoom() != 1 {
		t.Fatalf("after warp: state=%v zoom=%v", c.State(), c.Zoom())
	}

	c.Shake()
	c.Update(0, 0, 0.05)
	if c.State() != EffectShake {
		t.Fatalf("state = %v, want shake", c.State())
	}
	for i := 0; i < 10; i++ {
		c.Update(0, 0, 0.05)
	}
	if c.State() != EffectNormal {
		t.Fatalf("shake never ended")
	}
}

func TestCameraRumble(t *testing.T) {
	c := NewCamera(DefaultCameraConfig(), 800, 600, 10)
	if s, w := c.Rumble(); s != 0 || w != 0 {
		t.Fatalf("idle rumble = (%v, %v)", s, w)
	}

	c.Warp()
	if s, w := c.Rumble(); s != 0 || w != 0 {
		t.Fatalf("warp rumble = (%v, %v), want none", s, w)
	}
	for i := 0; i < 20; i++ {
		c.Update(0, 0, 0.05)
	}

	c.Shake()
	if s, w := c.Rumble(); s != 0.6 || w != 0 {
		t.Fatalf("shake rumble = (%v, %v), want (0.6, 0)", s, w)
	}
	for i := 0; i < 10; i++ {
		c.Update(0, 0, 0.05)
	}
	if s, _ := c.Rumble(); s != 0 {
		t.Fatalf("rumble %v outlived the shake", s)
	}

	var nilCam *Camera
	if s, w := nilCam.Rumble(); s != 0 || w != 0 {
		t.Fatalf("nil camera rumbles")
	}
}
