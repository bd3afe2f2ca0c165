package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DoorState is what a door is doing.
type DoorState int

const (
	DoorIdle DoorState = iota
	DoorOpening
	DoorClosing
)

func (s DoorState) String() string {
	switch s {
	case DoorOpening:
		return "opening"
	case DoorClosing:
		return "closing"
	default:
		return "idle"
	}
}

type DoorConfig struct {
	OpenTime float64 `yaml:"open_time"`
}

func DefaultDoorConfig() DoorConfig {
	return DoorConfig{OpenTime: 1}
}

// Door is a kinematic slab that slides one height along its local up when
// opened.
type Door struct {
	id        int
	cfg       DoorConfig
	body      *PhysicsBody
	closedPos cp.Vector
	openPos   cp.Vector
	state     DoorState

	from  cp.Vector
	to    cp.Vector
	tween *gween.Tween
}

func NewDoor(world *PhysicsWorld, cfg DoorConfig, id int, center cp.Vector, halfW, halfH, angle float64) *Door {
	d := &Door{id: id, cfg: cfg, closedPos: center}
	up := cp.Vector{X: -math.Sin(angle), Y: math.Cos(angle)}
	d.openPos = center.Add(up.Mult(2 * halfH))
	d.body = world.CreateBody(BodyDef{
		Type:       BodyKinematic,
		Position:   center,
		Angle:      angle,
		HalfWidth:  halfW,
		HalfHeight: halfH,
		Friction:   0.7,
		Owner:      d,
	})
	return d
}

func (d *Door) ID() int {
	if d == nil {
		return 0
	}
	return d.id
}

func (d *Door) State() DoorState {
	if d == nil {
		return DoorIdle
	}
	return d.state
}

// Open slides the door toward its open position from wherever it is.
func (d *Door) Open() {
	if d == nil {
		return
	}
	d.slide(d.openPos, DoorOpening)
}

// Close slides the door back.
func (d *Door) Close() {
	if d == nil {
		return
	}
	d.slide(d.closedPos, DoorClosing)
}

func (d *Door) slide(to cp.Vector, state DoorState) {
	d.from = d.body.Position()
	d.to = to
	if d.cfg.OpenTime <= 0 {
		d.body.SetPosition(to)
		d.tween = nil
		d.state = DoorIdle
		return
	}
	d.state = state
	d.tween = gween.New(0, 1, float32(d.cfg.OpenTime), ease.InOutQuad)
}

func (d *Door) Update(dt float64) {
	if d == nil || d.tween == nil {
		return
	}
	t, done := d.tween.Update(float32(dt))
	d.body.SetPosition(d.from.Lerp(d.to, float64(t)))
	if done {
		d.body.SetPosition(d.to)
		d.tween = nil
		d.state = DoorIdle
	}
}

func (d *Door) Tag() component.Tag { return component.TagDoor }
func (d *Door) BeginCollision(other Entity) {}
func (d *Door) EndCollision(other Entity) {}

func (d *Door) Body() *PhysicsBody {
	if d == nil {
		return nil
	}
	return d.body
}

func (d *Door) Position() cp.Vector {
	return d.Body().Position()
}

// OpenPosition and ClosedPosition are the slide endpoints.
func (d *Door) OpenPosition() cp.Vector { return d.openPos }
func (d *Door) ClosedPosition() cp.Vector { return d.closedPos }
