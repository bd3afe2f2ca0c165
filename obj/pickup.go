package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

// PickupKind is what a pickup restores.
type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupMaxAmmo
)

func (k PickupKind) String() string {
	if k == PickupMaxAmmo {
		return "max_ammo"
	}
	return "health"
}

type PickupConfig struct {
	HalfSize     float64 `yaml:"half_size"`
	HealthAmount int     `yaml:"health_amount"`
}

func DefaultPickupConfig() PickupConfig {
	return PickupConfig{HalfSize: 0.3, HealthAmount: 3}
}

// Pickup rides along with its carrier until activated, then drops into the
// world where the player can collect it.
type Pickup struct {
	cfg    PickupConfig
	kind   PickupKind
	body   *PhysicsBody
	follow *PhysicsBody
	active bool
	dead   bool
}

// NewPickup creates an inactive pickup that follows the given body. The
// pickup collides with nothing until Activate is called.
func NewPickup(world *PhysicsWorld, cfg PickupConfig, kind PickupKind, follow *PhysicsBody) *Pickup {
	if cfg.HalfSize <= 0 {
		cfg.HalfSize = DefaultPickupConfig().HalfSize
	}
	p := &Pickup{cfg: cfg, kind: kind, follow: follow}
	p.body = world.CreateBody(BodyDef{
		Type:          BodyDynamic,
		Position:      follow.Position(),
		HalfWidth:     cfg.HalfSize,
		HalfHeight:    cfg.HalfSize,
		Density:       0.5,
		Friction:      0.7,
		FixedRotation: true,
		Owner:         p,
	})
	p.body.SetCollisionEnabled(false)
	p.body.SetGravityScale(0)
	return p
}

func (p *Pickup) Tag() component.Tag { return component.TagPickup }

func (p *Pickup) Kind() PickupKind {
	if p == nil {
		return PickupHealth
	}
	return p.kind
}

func (p *Pickup) Active() bool {
	return p != nil && p.active
}

// Activate releases the pickup. Only flags and filters change, so it is safe
// to call from a contact callback.
func (p *Pickup) Activate() {
	if p == nil || p.active || p.dead {
		return
	}
	p.active = true
	p.follow = nil
	p.body.SetCollisionEnabled(true)
	p.body.SetGravityScale(1)
}

// Update keeps an inactive pickup glued to its carrier.
func (p *Pickup) Update(dt float64) {
	if p == nil || p.active || p.dead || p.follow == nil {
		return
	}
	if p.follow.Removed() {
		p.follow = nil
		return
	}
	p.body.SetPosition(p.follow.Position())
	p.body.SetVelocity(cp.Vector{})
}

// ApplyTo gives the pickup's effect to the player and consumes it.
func (p *Pickup) ApplyTo(pl *Player) bool {
	if p == nil || !p.active || p.dead || pl == nil {
		return false
	}
	switch p.kind {
	case PickupHealth:
		pl.Health().Heal(p.cfg.HealthAmount)
	case PickupMaxAmmo:
		pl.Gun().RefillReserve()
	}
	p.Kill()
	return true
}

func (p *Pickup) BeginCollision(other Entity) {}
func (p *Pickup) EndCollision(other Entity) {}

func (p *Pickup) Kill() {
	if p == nil {
		return
	}
	p.dead = true
	p.body.SetCollisionEnabled(false)
}

func (p *Pickup) TimeToDie() bool {
	return p == nil || p.dead
}

func (p *Pickup) Body() *PhysicsBody {
	if p == nil {
		return nil
	}
	return p.body
}

func (p *Pickup) Position() cp.Vector {
	return p.Body().Position()
}
