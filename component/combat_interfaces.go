package component

// HealthComponent exposes health operations for combat code.
type HealthComponent interface {
	IsAlive() bool
	ApplyDamage(amount int, evt DamageEvent) bool
	Heal(amount int)
	CurrentHP() int
	MaxHP() int
	SetCurrentHP(v int)
	SetMaxHP(v int)
}

var _ HealthComponent = (*Health)(nil)
