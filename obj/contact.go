package obj

import "github.com/milk9111/gravshift/component"

// ContactDispatcher routes begin/end contacts to both entities of a pair.
type ContactDispatcher struct{}

// Begin notifies both entities and reports whether the contact should get a
// physical response. Contacts missing an owner are left to the solver.
func (ContactDispatcher) Begin(a, b Entity) bool {
	if a == nil || b == nil {
		return true
	}
	a.BeginCollision(b)
	b.BeginCollision(a)
	return !PassThrough(a.Tag(), b.Tag())
}

// End notifies both entities that a contact ended.
func (ContactDispatcher) End(a, b Entity) {
	if a == nil || b == nil {
		return
	}
	a.EndCollision(b)
	b.EndCollision(a)
}

type tagPair struct{ a, b component.Tag }

var passThroughPairs = map[tagPair]bool{
	{component.TagBullet, component.TagBullet}: true,
	{component.TagBullet, component.TagPickup}: true,
	{component.TagPickup, component.TagPlayer}: true,
	{component.TagPickup, component.TagEnemy}:  true,
	{component.TagPickup, component.TagPickup}: true,
}

// PassThrough reports whether two tags overlap without a solver response.
// Pressure plates never push back.
func PassThrough(a, b component.Tag) bool {
	if a == component.TagPressurePlate || b == component.TagPressurePlate {
		return true
	}
	return passThroughPairs[tagPair{a, b}] || passThroughPairs[tagPair{b, a}]
}
