package obj

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

// Sound names played by gameplay objects.
const (
	SoundShoot      = "shoot"
	SoundHurt       = "hurt"
	SoundEnemyDeath = "enemy_death"
)

// SoundPlayer plays named one-shot samples.
type SoundPlayer interface {
	Play(name string)
	IsPlaying(name string) bool
}

// EnemyConfig tunes the patrolling shooter.
type EnemyConfig struct {
	Size            float64   `yaml:"size"`
	Density         float64   `yaml:"density"`
	Friction        float64   `yaml:"friction"`
	MoveSpeed       float64   `yaml:"move_speed"`
	DetectionRange  float64   `yaml:"detection_range"`
	MaxHealth       int       `yaml:"max_health"`
	DropProbability float64   `yaml:"drop_probability"`
	Gun             GunConfig `yaml:"gun"`
}

func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Size:            1,
		Density:         2,
		Friction:        0.7,
		MoveSpeed:       3,
		DetectionRange:  12,
		MaxHealth:       5,
		DropProbability: 0.3,
		Gun:             DefaultEnemyGunConfig(),
	}
}

// EnemyContext is everything an enemy reads from the world for one tick.
type EnemyContext struct {
	Gravity GravitySnapshot
	Player  *Player
	Dt      float64
}

type enemyState interface {
	Enter(e *Enemy)
	Exit(e *Enemy)
	Update(e *Enemy, ctx EnemyContext)
	Name() string
}

const (
	animEnemyRunning = "running"
	animEnemyIdle    = "idle"
	animEnemyDeath   = "death"
)

var (
	enemyStateRunning enemyState = &enemyRunningState{}
	enemyStateIdle    enemyState = &enemyIdleState{}
	enemyStateDeath   enemyState = &enemyDeathState{}
)

type enemyRunningState struct{}

func (enemyRunningState) Name() string { return "running" }
func (enemyRunningState) Enter(e *Enemy) { e.anim.Play(animEnemyRunning) }
func (enemyRunningState) Exit(e *Enemy) {}
func (enemyRunningState) Update(e *Enemy, ctx EnemyContext) {
	e.body.Translate(e.PatrolDirection(ctx.Gravity.Direction).Mult(e.cfg.MoveSpeed * ctx.Dt))
}

type enemyIdleState struct{}

func (enemyIdleState) Name() string { return "idle" }
func (enemyIdleState) Enter(e *Enemy) { e.anim.Play(animEnemyIdle) }
func (enemyIdleState) Exit(e *Enemy) {}
func (enemyIdleState) Update(e *Enemy, ctx EnemyContext) {
	if ctx.Player == nil {
		return
	}
	aim := ctx.Player.Position().Sub(e.body.Position())
	e.gun.Fire(e.body.Position(), aim, component.TagPlayer)
}

type enemyDeathState struct{}

func (enemyDeathState) Name() string { return "death" }
func (enemyDeathState) Enter(e *Enemy) { e.anim.Play(animEnemyDeath) }
func (enemyDeathState) Exit(e *Enemy) {}
func (enemyDeathState) Update(e *Enemy, ctx EnemyContext) {
	if e.anim.ReachedEnd(animEnemyDeath) {
		e.anim.Reset(animEnemyDeath)
		e.Kill()
	}
}

// Enemy patrols perpendicular to gravity and shoots the player on sight.
type Enemy struct {
	cfg    EnemyConfig
	world  *PhysicsWorld
	body   *PhysicsBody
	gun    *Gun
	health *component.Health
	anim   *component.Animator
	sounds SoundPlayer
	pickup *Pickup
	state  enemyState

	movingLeft bool
	sight      Perception
	killed     bool
}

// RollLoot draws the two samples that decide an enemy's drop. Both are
// always drawn so the stream stays aligned regardless of the outcome.
func RollLoot(rng *rand.Rand, dropProbability float64) (PickupKind, bool) {
	if rng == nil {
		return PickupHealth, false
	}
	drop := rng.Float64()
	kind := rng.Float64()
	if drop >= dropProbability {
		return PickupHealth, false
	}
	if kind < 0.5 {
		return PickupHealth, true
	}
	return PickupMaxAmmo, true
}

// NewEnemy spawns an enemy at pos and rolls its loot from rng.
func NewEnemy(world *PhysicsWorld, cfg EnemyConfig, pickupCfg PickupConfig, pos cp.Vector, bullets *BulletManager, rng *rand.Rand, sounds SoundPlayer) *Enemy {
	if cfg.Size <= 0 {
		cfg.Size = DefaultEnemyConfig().Size
	}
	gunCfg := cfg.Gun
	gunCfg.MagazineSize = 0
	e := &Enemy{
		cfg:    cfg,
		world:  world,
		sounds: sounds,
		gun:    NewGun(gunCfg, bullets),
		health: component.NewHealth(cfg.MaxHealth),
		anim: component.NewAnimator(
			component.Clip{Name: animEnemyRunning, Frames: 4, Loop: true},
			component.Clip{Name: animEnemyIdle, Frames: 2, Loop: true},
			component.Clip{Name: animEnemyDeath, Frames: 5, FrameTime: 0.1},
		),
	}
	e.body = world.CreateBody(BodyDef{
		Type:          BodyDynamic,
		Position:      pos,
		HalfWidth:     0.5 * cfg.Size,
		HalfHeight:    cfg.Size,
		Density:       cfg.Density,
		Friction:      cfg.Friction,
		FixedRotation: true,
		Owner:         e,
	})
	e.health.OnDeath = func(h *component.Health, evt component.DamageEvent) {
		e.die()
	}
	if kind, ok := RollLoot(rng, cfg.DropProbability); ok {
		e.pickup = NewPickup(world, pickupCfg, kind, e.body)
	}
	e.state = enemyStateRunning
	e.state.Enter(e)
	return e
}

func (e *Enemy) setState(s enemyState) {
	if e.state == s {
		return
	}
	e.state.Exit(e)
	e.state = s
	e.state.Enter(e)
}

// Update looks for the player, then runs the current state.
func (e *Enemy) Update(ctx EnemyContext) {
	if e == nil || e.killed {
		return
	}
	e.anim.Update(ctx.Dt)
	if e.state == enemyStateDeath {
		e.state.Update(e, ctx)
		return
	}
	e.gun.Update(ctx.Dt)
	e.body.SetAngle(ctx.Gravity.Direction.BodyAngle())

	e.sight = Perception{Ray: RaycastResult{Fraction: 1}}
	if ctx.Player != nil && !ctx.Player.Dead() {
		e.sight = Perceive(e.world, e.body, ctx.Player.Position(), e.cfg.DetectionRange, component.TagPlayer)
	}
	if e.sight.InRange {
		e.setState(enemyStateIdle)
	} else {
		e.setState(enemyStateRunning)
	}
	e.state.Update(e, ctx)
}

// PatrolDirection is the unit displacement of one patrol step under gravity
// direction d.
func (e *Enemy) PatrolDirection(d Direction) cp.Vector {
	left := e != nil && e.movingLeft
	switch d {
	case GravityLeft:
		if left {
			return cp.Vector{X: 0, Y: 1}
		}
		return cp.Vector{X: 0, Y: -1}
	case GravityRight:
		if left {
			return cp.Vector{X: 0, Y: -1}
		}
		return cp.Vector{X: 0, Y: 1}
	default:
		if left {
			return cp.Vector{X: -1, Y: 0}
		}
		return cp.Vector{X: 1, Y: 0}
	}
}

func (e *Enemy) die() {
	if e.pickup != nil {
		e.pickup.Activate()
	}
	if e.sounds != nil && !e.sounds.IsPlaying(SoundEnemyDeath) {
		e.sounds.Play(SoundEnemyDeath)
	}
	e.setState(enemyStateDeath)
}

func (e *Enemy) Tag() component.Tag { return component.TagEnemy }

// BeginCollision turns the patrol around on any non-bullet contact and takes
// bullet damage aimed at enemies.
func (e *Enemy) BeginCollision(other Entity) {
	if e == nil || other == nil {
		return
	}
	switch other.Tag() {
	case component.TagBullet:
		d, ok := other.(Damager)
		if !ok || d.Target() != component.TagEnemy || d.Damage() <= 0 || e.health.Dead {
			return
		}
		pos := e.body.Position()
		e.health.ApplyDamage(d.ConsumeDamage(), component.DamageEvent{
			Source: component.TagBullet,
			Target: component.TagEnemy,
			PosX:   pos.X,
			PosY:   pos.Y,
		})
	default:
		e.movingLeft = !e.movingLeft
	}
}

func (e *Enemy) EndCollision(other Entity) {}

func (e *Enemy) Kill() {
	if e == nil {
		return
	}
	e.killed = true
}

func (e *Enemy) TimeToDie() bool {
	return e == nil || e.killed
}

func (e *Enemy) Body() *PhysicsBody {
	if e == nil {
		return nil
	}
	return e.body
}

func (e *Enemy) Position() cp.Vector {
	return e.Body().Position()
}

func (e *Enemy) Gun() *Gun {
	if e == nil {
		return nil
	}
	return e.gun
}

func (e *Enemy) Health() *component.Health {
	if e == nil {
		return nil
	}
	return e.health
}

// Pickup is the loot this enemy carries, or nil.
func (e *Enemy) Pickup() *Pickup {
	if e == nil {
		return nil
	}
	return e.pickup
}

func (e *Enemy) Animator() *component.Animator {
	if e == nil {
		return nil
	}
	return e.anim
}

func (e *Enemy) StateName() string {
	if e == nil || e.state == nil {
		return ""
	}
	return e.state.Name()
}

// Sight is the last perception result.
func (e *Enemy) Sight() Perception {
	if e == nil {
		return Perception{}
	}
	return e.sight
}

func (e *Enemy) MovingLeft() bool {
	return e != nil && e.movingLeft
}
