package component

import "testing"

func TestAnimatorLoopingClipWraps(t *testing.T) {
	a := NewAnimator(Clip{Name: "run", Frames: 3, FrameTime: 0.1, Loop: true})
	a.Update(0.25)
	if a.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", a.Frame())
	}
	a.Update(0.1)
	if a.Frame() != 0 {
		t.Fatalf("frame = %d, want 0 after wrap", a.Frame())
	}
	if a.ReachedEnd("run") {
		t.Fatalf("looping clip should never finish")
	}
}

func TestAnimatorOneShotReachesEnd(t *testing.T) {
	a := NewAnimator(
		Clip{Name: "idle", Frames: 1, Loop: true},
		Clip{Name: "death", Frames: 2, FrameTime: 0.1},
	)
	if a.Current() != "idle" {
		t.Fatalf("first clip should be current, got %q", a.Current())
	}
	a.Play("death")
	a.Update(0.15)
	if a.ReachedEnd("death") {
		t.Fatalf("death finished too early")
	}
	a.Update(0.1)
	if !a.ReachedEnd("death") {
		t.Fatalf("death should have finished")
	}
	a.Reset("death")
	if a.ReachedEnd("death") || a.Frame() != 0 {
		t.Fatalf("reset should rewind the clip")
	}
}

func TestAnimatorPlayUnknownClipIgnored(t *testing.T) {
	a := NewAnimator(Clip{Name: "idle"})
	a.Play("missing")
	if a.Current() != "idle" {
		t.Fatalf("current = %q", a.Current())
	}
}
