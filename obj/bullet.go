package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

// BulletConfig tunes projectiles.
type BulletConfig struct {
	HalfSize float64 `yaml:"half_size"`
	TTL      float64 `yaml:"ttl"`
}

func DefaultBulletConfig() BulletConfig {
	return BulletConfig{HalfSize: 0.2, TTL: 3}
}

// Bullet is a one-shot damage carrier flying in a straight line.
type Bullet struct {
	body   *PhysicsBody
	target component.Tag
	damage int
	ttl    float64
	age    float64
	alive  bool
}

func (b *Bullet) Tag() component.Tag { return component.TagBullet }

func (b *Bullet) Target() component.Tag {
	if b == nil {
		return component.TagNone
	}
	return b.target
}

func (b *Bullet) Damage() int {
	if b == nil {
		return 0
	}
	return b.damage
}

// ConsumeDamage hands out the damage once.
func (b *Bullet) ConsumeDamage() int {
	if b == nil {
		return 0
	}
	d := b.damage
	b.damage = 0
	return d
}

func (b *Bullet) Kill() {
	if b == nil {
		return
	}
	b.alive = false
}

func (b *Bullet) TimeToDie() bool {
	return b == nil || !b.alive
}

func (b *Bullet) Body() *PhysicsBody {
	if b == nil {
		return nil
	}
	return b.body
}

func (b *Bullet) Position() cp.Vector {
	return b.Body().Position()
}

// BeginCollision kills the bullet on its target or on anything that is not a
// combatant. Other bullets and pickups are ignored.
func (b *Bullet) BeginCollision(other Entity) {
	if b == nil || other == nil {
		return
	}
	tag := other.Tag()
	switch {
	case tag == component.TagBullet || tag == component.TagPickup:
		return
	case tag == b.target:
		b.Kill()
	case !tag.IsCombatant():
		b.Kill()
	}
}

func (b *Bullet) EndCollision(other Entity) {}

// BulletManager owns every live bullet in a world.
type BulletManager struct {
	world   *PhysicsWorld
	cfg     BulletConfig
	bullets []*Bullet
}

func NewBulletManager(world *PhysicsWorld, cfg BulletConfig) *BulletManager {
	if cfg.HalfSize <= 0 {
		cfg.HalfSize = DefaultBulletConfig().HalfSize
	}
	return &BulletManager{world: world, cfg: cfg}
}

// Fire spawns a bullet at origin heading along direction. A zero direction
// fires nothing.
func (m *BulletManager) Fire(direction, origin cp.Vector, damage int, target component.Tag, speed float64) *Bullet {
	if m == nil || m.world == nil {
		return nil
	}
	if direction.LengthSq() == 0 {
		return nil
	}
	dir := direction.Normalize()
	b := &Bullet{
		target: target,
		damage: damage,
		ttl:    m.cfg.TTL,
		alive:  true,
	}
	b.body = m.world.CreateBody(BodyDef{
		Type:          BodyDynamic,
		Position:      origin,
		Angle:         math.Atan2(dir.Y, dir.X),
		HalfWidth:     m.cfg.HalfSize,
		HalfHeight:    m.cfg.HalfSize,
		Density:       1,
		FixedRotation: true,
		NoGravity:     true,
		Owner:         b,
	})
	if b.body == nil {
		return nil
	}
	b.body.SetVelocity(dir.Mult(speed))
	b.body.SetCollisionEnabled(true)
	m.bullets = append(m.bullets, b)
	return b
}

// Update ages bullets and sweeps the dead ones in a single pass.
func (m *BulletManager) Update(dt float64) {
	if m == nil || len(m.bullets) == 0 {
		return
	}
	writeIdx := 0
	for _, b := range m.bullets {
		if b == nil {
			continue
		}
		b.age += dt
		if b.ttl > 0 && b.age >= b.ttl {
			b.Kill()
		}
		if b.TimeToDie() {
			b.body.Destroy()
			continue
		}
		m.bullets[writeIdx] = b
		writeIdx++
	}
	for i := writeIdx; i < len(m.bullets); i++ {
		m.bullets[i] = nil
	}
	m.bullets = m.bullets[:writeIdx]
}

// Clear destroys every bullet.
func (m *BulletManager) Clear() {
	if m == nil {
		return
	}
	for _, b := range m.bullets {
		if b != nil {
			b.body.Destroy()
		}
	}
	m.bullets = nil
}

// Bullets returns the live bullets. The slice is owned by the manager.
func (m *BulletManager) Bullets() []*Bullet {
	if m == nil {
		return nil
	}
	return m.bullets
}

func (m *BulletManager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.bullets)
}
