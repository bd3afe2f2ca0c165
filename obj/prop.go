package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

// PropKind is the flavour of a plain level object.
type PropKind int

const (
	PropLevel PropKind = iota
	PropCrate
	PropDynamic
	PropNext
	PropWin
)

func (k PropKind) String() string {
	switch k {
	case PropCrate:
		return "crate"
	case PropDynamic:
		return "dynamic"
	case PropNext:
		return "next"
	case PropWin:
		return "win"
	default:
		return "level"
	}
}

func (k PropKind) tag() component.Tag {
	switch k {
	case PropCrate:
		return component.TagCrate
	case PropNext:
		return component.TagNextObject
	case PropWin:
		return component.TagWinObject
	default:
		return component.TagNone
	}
}

func (k PropKind) dynamic() bool {
	return k == PropCrate || k == PropDynamic
}

// PropDef places a prop. Half extents are in world units.
type PropDef struct {
	Kind       PropKind
	Center     cp.Vector
	HalfWidth  float64
	HalfHeight float64
	Angle      float64
	Density    float64
}

// Prop is level geometry, a crate, a loose object or an exit console.
type Prop struct {
	kind   PropKind
	body   *PhysicsBody
	bounds float64
	dead   bool
}

// NewProp creates the body for def. Dynamic props that drift further than
// bounds from the origin are killed; zero disables the check.
func NewProp(world *PhysicsWorld, def PropDef, bounds float64) *Prop {
	p := &Prop{kind: def.Kind, bounds: bounds}
	bt := BodyStatic
	if def.Kind.dynamic() {
		bt = BodyDynamic
	}
	p.body = world.CreateBody(BodyDef{
		Type:       bt,
		Position:   def.Center,
		Angle:      def.Angle,
		HalfWidth:  def.HalfWidth,
		HalfHeight: def.HalfHeight,
		Density:    def.Density,
		Friction:   0.7,
		Owner:      p,
	})
	return p
}

func (p *Prop) Update(dt float64) {
	if p == nil || p.dead || !p.kind.dynamic() || p.bounds <= 0 {
		return
	}
	if p.body.Position().Length() > p.bounds {
		p.Kill()
	}
}

func (p *Prop) Kind() PropKind {
	if p == nil {
		return PropLevel
	}
	return p.kind
}

func (p *Prop) Tag() component.Tag { return p.kind.tag() }
func (p *Prop) BeginCollision(other Entity) {}
func (p *Prop) EndCollision(other Entity) {}

func (p *Prop) Kill() {
	if p == nil {
		return
	}
	p.dead = true
}

func (p *Prop) TimeToDie() bool {
	return p == nil || p.dead
}

func (p *Prop) Body() *PhysicsBody {
	if p == nil {
		return nil
	}
	return p.body
}

func (p *Prop) Position() cp.Vector {
	return p.Body().Position()
}
