package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

// stubEntity records contacts. When destroyOnBegin is set it destroys its
// own body from inside the callback.
type stubEntity struct {
	tag            component.Tag
	body           *PhysicsBody
	begins         []component.Tag
	ends           []component.Tag
	destroyOnBegin bool
}

func (s *stubEntity) Tag() component.Tag { return s.tag }
func (s *stubEntity) BeginCollision(other Entity) {
	s.begins = append(s.begins, other.Tag())
	if s.destroyOnBegin {
		s.body.Destroy()
	}
}
func (s *stubEntity) EndCollision(other Entity) { s.ends = append(s.ends, other.Tag()) }
func (s *stubEntity) Body() *PhysicsBody { return s.body }

func newTestWorld() *PhysicsWorld {
	return NewPhysicsWorld(DefaultPhysicsConfig(), cp.Vector{})
}

func addStub(w *PhysicsWorld, tag component.Tag, typ BodyType, pos cp.Vector, half float64) *stubEntity {
	s := &stubEntity{tag: tag}
	s.body = w.CreateBody(BodyDef{
		Type:       typ,
		Position:   pos,
		HalfWidth:  half,
		HalfHeight: half,
		Density:    1,
		Owner:      s,
	})
	return s
}

func TestPassThrough(t *testing.T) {
	cases := []struct {
		a, b component.Tag
		want bool
	}{
		{component.TagBullet, component.TagBullet, true},
		{component.TagBullet, component.TagPickup, true},
		{component.TagPickup, component.TagBullet, true},
		{component.TagPlayer, component.TagPickup, true},
		{component.TagEnemy, component.TagPickup, true},
		{component.TagPickup, component.TagPickup, true},
		{component.TagCrate, component.TagPressurePlate, true},
		{component.TagPressurePlate, component.TagPlayer, true},
		{component.TagBullet, component.TagPlayer, false},
		{component.TagBullet, component.TagNone, false},
		{component.TagPlayer, component.TagCrate, false},
		{component.TagEnemy, component.TagDoor, false},
		{component.TagPickup, component.TagNone, false},
	}
	for _, c := range cases {
		t.Run(c.a.String()+"_"+c.b.String(), func(t *testing.T) {
			if got := PassThrough(c.a, c.b); got != c.want {
				t.Fatalf("PassThrough = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDispatcherNotifiesBothSides(t *testing.T) {
	a := &stubEntity{tag: component.TagPlayer}
	b := &stubEntity{tag: component.TagCrate}
	var d ContactDispatcher

	if !d.Begin(a, b) {
		t.Fatalf("player and crate should collide physically")
	}
	d.End(a, b)
	if len(a.begins) != 1 || a.begins[0] != component.TagCrate {
		t.Fatalf("a begins = %v", a.begins)
	}
	if len(b.begins) != 1 || b.begins[0] != component.TagPlayer {
		t.Fatalf("b begins = %v", b.begins)
	}
	if len(a.ends) != 1 || len(b.ends) != 1 {
		t.Fatalf("ends = %v / %v", a.ends, b.ends)
	}
	if !d.Begin(nil, b) {
		t.Fatalf("contacts without an owner are left to the solver")
	}
}

func TestDestroyDuringStepIsDeferred(t *testing.T) {
	w := newTestWorld()
	floor := addStub(w, component.TagNone, BodyStatic, cp.Vector{}, 1)
	box := addStub(w, component.TagCrate, BodyDynamic, cp.Vector{X: 0.5}, 1)
	floor.destroyOnBegin = true
	box.destroyOnBegin = true

	w.Step(1.0 / 60)

	if w.Stepping() {
		t.Fatalf("world still stepping")
	}
	if len(floor.begins) == 0 || len(box.begins) == 0 {
		t.Fatalf("expected a begin contact, got %v / %v", floor.begins, box.begins)
	}
	if !floor.body.Removed() || !box.body.Removed() {
		t.Fatalf("bodies should be removed once the step ends")
	}

	// A second destroy is a no-op.
	box.body.Destroy()
	w.Step(1.0 / 60)
}

func TestEachBodyAllowsDestroy(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 3; i++ {
		addStub(w, component.TagCrate, BodyDynamic, cp.Vector{X: float64(i) * 5}, 0.5)
	}
	n := 0
	w.EachBody(func(pb *PhysicsBody) {
		n++
		pb.Destroy()
	})
	if n != 3 {
		t.Fatalf("visited %d bodies, want 3", n)
	}
	left := 0
	w.EachBody(func(pb *PhysicsBody) { left++ })
	if left != 0 {
		t.Fatalf("%d bodies left", left)
	}
}

func TestRayCastClosestHit(t *testing.T) {
	w := newTestWorld()
	near := addStub(w, component.TagNone, BodyStatic, cp.Vector{X: 3}, 0.5)
	addStub(w, component.TagPlayer, BodyDynamic, cp.Vector{X: 6}, 0.5)

	res := w.RayCast(cp.Vector{}, cp.Vector{X: 10}, nil)
	if !res.Hit() || res.Owner != Entity(near) {
		t.Fatalf("hit %v, want the near wall", res.Owner)
	}
	if res.Fraction <= 0 || res.Fraction >= 0.5 {
		t.Fatalf("fraction = %v", res.Fraction)
	}

	miss := w.RayCast(cp.Vector{Y: 5}, cp.Vector{X: 10, Y: 5}, nil)
	if miss.Hit() || miss.Fraction != 1 {
		t.Fatalf("expected a miss, got %+v", miss)
	}
}
