package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

// Entity is anything attached to a physics body that reacts to contacts.
type Entity interface {
	Tag() component.Tag
	BeginCollision(other Entity)
	EndCollision(other Entity)
}

// Damager is implemented by entities carrying one-shot damage.
type Damager interface {
	Entity
	Target() component.Tag
	Damage() int
	// ConsumeDamage returns the pending damage and zeroes it, so a contact
	// that persists across steps cannot apply it twice.
	ConsumeDamage() int
}

// Pickupable is implemented by items the player can collect.
type Pickupable interface {
	Entity
	ApplyTo(p *Player) bool
}

// Killable entities are swept by their owner once TimeToDie reports true.
type Killable interface {
	Kill()
	TimeToDie() bool
}

// Positioned exposes an entity's world position.
type Positioned interface {
	Position() cp.Vector
}
