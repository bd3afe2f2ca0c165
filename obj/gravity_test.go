package obj

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

type fakeGravityWorld struct {
	gravity       cp.Vector
	allowSleeping bool
	impulses      []cp.Vector
}

func (w *fakeGravityWorld) SetGravity(g cp.Vector) { w.gravity = g }
func (w *fakeGravityWorld) SetAllowSleeping(allow bool) { w.allowSleeping = allow }
func (w *fakeGravityWorld) ApplyImpulseToDynamicBodies(i cp.Vector) {
	w.impulses = append(w.impulses, i)
}

type countingWarper struct{ n int }

func (c *countingWarper) Warp() { c.n++ }

func TestGravitySetDirection(t *testing.T) {
	cases := []struct {
		dir  Direction
		want cp.Vector
	}{
		{GravityDown, cp.Vector{X: 0, Y: -1}},
		{GravityUp, cp.Vector{X: 0, Y: 1}},
		{GravityLeft, cp.Vector{X: -1, Y: 0}},
		{GravityRight, cp.Vector{X: 1, Y: 0}},
	}

	for _, c := range cases {
		t.Run(c.dir.String(), func(t *testing.T) {
			w := &fakeGravityWorld{allowSleeping: true}
			warp := &countingWarper{}
			g := NewGravityController(DefaultGravityConfig(), w, warp)
			g.SetDirection(c.dir)
			if w.gravity != c.want {
				t.Fatalf("gravity = %v, want %v", w.gravity, c.want)
			}
			if w.allowSleeping {
				t.Fatalf("sleeping should be disabled after a direction change")
			}
			if warp.n != 1 {
				t.Fatalf("warps = %d, want 1", warp.n)
			}
			if g.Snapshot().Vector() != c.want {
				t.Fatalf("snapshot = %v, want %v", g.Snapshot().Vector(), c.want)
			}
		})
	}
}

func TestGravityWeakenRevertsAfterWindow(t *testing.T) {
	w := &fakeGravityWorld{}
	g := NewGravityController(DefaultGravityConfig(), w, nil)
	if g.Multiplier() != 1 || w.gravity != (cp.Vector{X: 0, Y: -1}) {
		t.Fatalf("start: multiplier=%v gravity=%v, want nominal 1", g.Multiplier(), w.gravity)
	}

	g.Weaken()
	if g.Multiplier() != 0 || !g.BoostActive() {
		t.Fatalf("weaken: multiplier=%v boost=%v", g.Multiplier(), g.BoostActive())
	}
	if len(w.impulses) != 1 || w.impulses[0] != (cp.Vector{X: 0, Y: 1}) {
		t.Fatalf("impulses = %v, want one upward kick", w.impulses)
	}

	for i := 0; i < 4; i++ {
		g.Update(1)
	}
	if g.Multiplier() != 0 {
		t.Fatalf("reverted early at %v", g.Multiplier())
	}
	g.Update(1)
	if g.Multiplier() != 10 || g.BoostActive() {
		t.Fatalf("after window: multiplier=%v boost=%v", g.Multiplier(), g.BoostActive())
	}
	if w.gravity != (cp.Vector{X: 0, Y: -10}) {
		t.Fatalf("world gravity = %v", w.gravity)
	}
	// The revert lands on its own value, not back on the nominal one.
	if g.Multiplier() == g.Config().NominalMultiplier {
		t.Fatalf("revert multiplier %v equals nominal", g.Multiplier())
	}
}

func TestGravityStrengthenRestartsWindow(t *testing.T) {
	g := NewGravityController(DefaultGravityConfig(), &fakeGravityWorld{}, nil)
	g.Strengthen()
	g.Update(4)
	g.Strengthen()
	g.Update(4)
	if g.Multiplier() != 50 {
		t.Fatalf("multiplier = %v, want 50 while boost is fresh", g.Multiplier())
	}
	g.Update(1)
	if g.Multiplier() != 10 {
		t.Fatalf("multiplier = %v, want 10", g.Multiplier())
	}
}

func TestDirectionFromVector(t *testing.T) {
	cases := []struct {
		name    string
		v       cp.Vector
		want    Direction
		wantErr bool
	}{
		{"up", cp.Vector{Y: 3}, GravityUp, false},
		{"down", cp.Vector{Y: -1}, GravityDown, false},
		{"left", cp.Vector{X: -2}, GravityLeft, false},
		{"right", cp.Vector{X: 9}, GravityRight, false},
		{"zero", cp.Vector{}, GravityDown, true},
		{"diagonal", cp.Vector{X: 1, Y: 1}, GravityDown, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DirectionFromVector(c.v)
			if c.wantErr {
				if !errors.Is(err, ErrInvalidGravity) {
					t.Fatalf("err = %v, want ErrInvalidGravity", err)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("got %v, %v; want %v", got, err, c.want)
			}
		})
	}
}

func TestGravitySetStartVector(t *testing.T) {
	w := &fakeGravityWorld{}
	warp := &countingWarper{}
	g := NewGravityController(DefaultGravityConfig(), w, warp)

	if err := g.SetStartVector(cp.Vector{X: -4}); err != nil {
		t.Fatalf("start vector: %v", err)
	}
	if g.Direction() != GravityLeft || w.gravity != (cp.Vector{X: -1}) {
		t.Fatalf("direction=%v gravity=%v, want left at nominal", g.Direction(), w.gravity)
	}
	if warp.n != 0 {
		t.Fatalf("warps = %d, want none", warp.n)
	}

	err := g.SetStartVector(cp.Vector{X: 1, Y: -1})
	if !errors.Is(err, ErrInvalidGravity) {
		t.Fatalf("err = %v, want ErrInvalidGravity", err)
	}
	if g.Direction() != GravityLeft {
		t.Fatalf("rejected vector changed direction to %v", g.Direction())
	}
}
