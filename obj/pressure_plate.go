package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

type bodied interface {
	Body() *PhysicsBody
}

// PressurePlate is a sensor that switches on while enough mass rests on it.
// A fussy plate only counts crates.
type PressurePlate struct {
	body      *PhysicsBody
	threshold float64
	fussy     bool
	doorID    int
	overlaps  map[Entity]int
	active    bool

	OnActivate   func()
	OnDeactivate func()
}

func NewPressurePlate(world *PhysicsWorld, center cp.Vector, halfW, halfH, angle, threshold float64, doorID int, fussy bool) *PressurePlate {
	pp := &PressurePlate{
		threshold: threshold,
		fussy:     fussy,
		doorID:    doorID,
		overlaps:  make(map[Entity]int),
	}
	pp.body = world.CreateBody(BodyDef{
		Type:       BodyStatic,
		Position:   center,
		Angle:      angle,
		HalfWidth:  halfW,
		HalfHeight: halfH,
		Sensor:     true,
		Owner:      pp,
	})
	return pp
}

func (pp *PressurePlate) Tag() component.Tag { return component.TagPressurePlate }

func (pp *PressurePlate) counts(other Entity) bool {
	if pp.fussy {
		return other.Tag() == component.TagCrate
	}
	return true
}

func (pp *PressurePlate) BeginCollision(other Entity) {
	if pp == nil || other == nil || !pp.counts(other) {
		return
	}
	pp.overlaps[other]++
}

func (pp *PressurePlate) EndCollision(other Entity) {
	if pp == nil || other == nil {
		return
	}
	n, ok := pp.overlaps[other]
	if !ok {
		return
	}
	if n <= 1 {
		delete(pp.overlaps, other)
		return
	}
	pp.overlaps[other] = n - 1
}

// Mass sums the dynamic mass currently resting on the plate.
func (pp *PressurePlate) Mass() float64 {
	if pp == nil {
		return 0
	}
	total := 0.0
	for e := range pp.overlaps {
		b, ok := e.(bodied)
		if !ok {
			continue
		}
		body := b.Body()
		if body.Removed() {
			continue
		}
		total += body.Mass()
	}
	return total
}

// Update fires OnActivate or OnDeactivate when the load crosses the
// threshold.
func (pp *PressurePlate) Update() {
	if pp == nil {
		return
	}
	for e := range pp.overlaps {
		if b, ok := e.(bodied); ok && b.Body().Removed() {
			delete(pp.overlaps, e)
		}
	}
	active := len(pp.overlaps) > 0 && pp.Mass() >= pp.threshold
	if active == pp.active {
		return
	}
	pp.active = active
	if active {
		if pp.OnActivate != nil {
			pp.OnActivate()
		}
		return
	}
	if pp.OnDeactivate != nil {
		pp.OnDeactivate()
	}
}

func (pp *PressurePlate) Active() bool {
	return pp != nil && pp.active
}

func (pp *PressurePlate) DoorID() int {
	if pp == nil {
		return 0
	}
	return pp.doorID
}

func (pp *PressurePlate) Fussy() bool {
	return pp != nil && pp.fussy
}

func (pp *PressurePlate) Body() *PhysicsBody {
	if pp == nil {
		return nil
	}
	return pp.body
}
