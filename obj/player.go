package obj

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/component"
)

// EndState is how a level finished.
type EndState int

const (
	EndNone EndState = iota
	EndWin
	EndLose
)

func (s EndState) String() string {
	switch s {
	case EndWin:
		return "win"
	case EndLose:
		return "lose"
	default:
		return "none"
	}
}

// PlayerConfig tunes the player body and controls.
type PlayerConfig struct {
	MoveSpeed   float64   `yaml:"move_speed"`
	JumpImpulse float64   `yaml:"jump_impulse"`
	HalfWidth   float64   `yaml:"half_width"`
	HalfHeight  float64   `yaml:"half_height"`
	Density     float64   `yaml:"density"`
	Friction    float64   `yaml:"friction"`
	MaxHealth   int       `yaml:"max_health"`
	Gun         GunConfig `yaml:"gun"`
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MoveSpeed:   8,
		JumpImpulse: 40,
		HalfWidth:   0.5,
		HalfHeight:  1,
		Density:     1,
		Friction:    0.7,
		MaxHealth:   10,
		Gun:         DefaultPlayerGunConfig(),
	}
}

// CameraFramer is the camera surface the player steers.
type CameraFramer interface {
	SetAbovePlayer(above bool)
}

// playerState is the interface each concrete player state implements.
type playerState interface {
	Enter(p *Player)
	Exit(p *Player)
	HandleInput(p *Player, in Input)
	Name() string
}

const (
	animPlayerIdle    = "idle"
	animPlayerRunning = "running"
	animPlayerJumping = "jumping"
)

var (
	stateIdle    playerState = &idleState{}
	stateRunning playerState = &runningState{}
	stateJumping playerState = &jumpingState{}
)

type idleState struct{}

func (idleState) Name() string { return "idle" }
func (idleState) Enter(p *Player) {
	p.jumping = false
	p.anim.Play(animPlayerIdle)
}
func (idleState) Exit(p *Player) {}
func (idleState) HandleInput(p *Player, in Input) {
	if in.Held(ActionMoveLeft) || in.Held(ActionMoveRight) {
		p.setState(stateRunning)
	}
}

type runningState struct{}

func (runningState) Name() string { return "running" }
func (runningState) Enter(p *Player) {
	p.jumping = false
	p.anim.Play(animPlayerRunning)
}
func (runningState) Exit(p *Player) {}
func (runningState) HandleInput(p *Player, in Input) {
	if !in.Held(ActionMoveLeft) && !in.Held(ActionMoveRight) {
		p.setState(stateIdle)
	}
}

type jumpingState struct{}

func (jumpingState) Name() string { return "jumping" }
func (jumpingState) Enter(p *Player) {
	p.jumping = true
	p.anim.Play(animPlayerJumping)
	up := p.gravity.Snapshot().Unit.Neg()
	p.body.ApplyImpulse(up.Mult(p.cfg.JumpImpulse))
}
func (jumpingState) Exit(p *Player) {
	p.anim.Reset(animPlayerJumping)
}

// A jump only ends on contact.
func (jumpingState) HandleInput(p *Player, in Input) {}

// Player is the gravity-wielding protagonist. It owns the gravity controller.
type Player struct {
	cfg     PlayerConfig
	body    *PhysicsBody
	gravity *GravityController
	camera  CameraFramer
	gun     *Gun
	health  *component.Health
	anim    *component.Animator
	sounds  SoundPlayer
	state   playerState

	dir        Direction
	locked     bool
	jumping    bool
	facingLeft bool
	flipped    bool

	touchingNext int
	touchingWin  int
	end          EndState
	final        bool
}

// NewPlayer spawns the player at pos. Gravity is driven through the given
// controller and the camera is steered on gravity changes.
func NewPlayer(world *PhysicsWorld, cfg PlayerConfig, pos cp.Vector, gravity *GravityController, bullets *BulletManager, camera CameraFramer, sounds SoundPlayer) *Player {
	p := &Player{
		cfg:     cfg,
		gravity: gravity,
		camera:  camera,
		sounds:  sounds,
		gun:     NewGun(cfg.Gun, bullets),
		health:  component.NewHealth(cfg.MaxHealth),
		anim: component.NewAnimator(
			component.Clip{Name: animPlayerIdle, Frames: 4, Loop: true},
			component.Clip{Name: animPlayerRunning, Frames: 6, FrameTime: 0.1, Loop: true},
			component.Clip{Name: animPlayerJumping, Frames: 4, FrameTime: 0.1},
		),
		dir: gravity.Direction(),
	}
	p.body = world.CreateBody(BodyDef{
		Type:          BodyDynamic,
		Position:      pos,
		Angle:         p.dir.BodyAngle(),
		HalfWidth:     cfg.HalfWidth,
		HalfHeight:    cfg.HalfHeight,
		Density:       cfg.Density,
		Friction:      cfg.Friction,
		FixedRotation: true,
		Owner:         p,
	})
	p.state = stateIdle
	p.state.Enter(p)
	return p
}

func (p *Player) setState(s playerState) {
	if p.state == s {
		return
	}
	p.state.Exit(p)
	p.state = s
	p.state.Enter(p)
}

// Update applies one frame of input. The order matters: movement uses the
// direction from before this frame's gravity press.
func (p *Player) Update(in Input, dt float64) {
	if p == nil || !p.health.IsAlive() {
		return
	}
	p.move(in, dt)

	if in.Pressed(ActionGravityLock) {
		p.toggleLock()
	}

	if in.Pressed(ActionJump) && !p.jumping && !p.locked {
		p.setState(stateJumping)
	}

	p.handleGravityPress(in)
	p.body.SetAngle(p.dir.BodyAngle())

	if in.Pressed(ActionGravityStrengthUp) {
		p.gravity.Strengthen()
	} else if in.Pressed(ActionGravityStrengthDown) {
		p.gravity.Weaken()
	}
	p.gravity.Update(dt)

	p.gun.Update(dt)
	if in.Pressed(ActionReload) {
		p.gun.Reload()
	}
	if in.Pressed(ActionFire) {
		if b := p.gun.Fire(p.body.Position(), p.AimDirection(), component.TagEnemy); b != nil && p.sounds != nil {
			p.sounds.Play(SoundShoot)
		}
	}

	if in.Pressed(ActionInteract) && p.end == EndNone {
		switch {
		case p.touchingWin > 0:
			p.end = EndWin
			p.final = true
		case p.touchingNext > 0:
			p.end = EndWin
		}
	}

	p.updateFacing(in)
	p.state.HandleInput(p, in)
	p.anim.Update(dt)
}

// moveAxis is the displacement MoveLeft produces for a gravity direction.
// MoveRight is its negation. Up mirrors Down since the body is turned over.
func moveAxis(d Direction) cp.Vector {
	switch d {
	case GravityUp:
		return cp.Vector{X: 1, Y: 0}
	case GravityLeft:
		return cp.Vector{X: 0, Y: 1}
	case GravityRight:
		return cp.Vector{X: 0, Y: -1}
	default:
		return cp.Vector{X: -1, Y: 0}
	}
}

func (p *Player) move(in Input, dt float64) {
	step := p.cfg.MoveSpeed * dt
	left := moveAxis(p.dir)
	if in.Held(ActionMoveLeft) {
		p.body.Translate(left.Mult(step))
		p.facingLeft = true
	}
	if in.Held(ActionMoveRight) {
		p.body.Translate(left.Neg().Mult(step))
		p.facingLeft = false
	}
}

func (p *Player) toggleLock() {
	p.locked = !p.locked
	if p.locked {
		p.body.SetGravityScale(0)
		return
	}
	p.body.SetGravityScale(1)
	snap := p.gravity.Snapshot()
	p.body.ApplyImpulse(snap.Unit.Mult(p.gravity.Config().LockReleaseImpulse))
	p.dir = snap.Direction
}

func (p *Player) handleGravityPress(in Input) {
	var d Direction
	switch {
	case in.Pressed(ActionGravityUp):
		d = GravityUp
	case in.Pressed(ActionGravityDown):
		d = GravityDown
	case in.Pressed(ActionGravityLeft):
		d = GravityLeft
	case in.Pressed(ActionGravityRight):
		d = GravityRight
	default:
		return
	}
	p.gravity.SetDirection(d)
	if p.locked {
		return
	}
	p.dir = d
	if p.camera == nil {
		return
	}
	switch d {
	case GravityUp:
		p.camera.SetAbovePlayer(false)
	case GravityDown:
		p.camera.SetAbovePlayer(true)
	}
}

// updateFacing keeps the sprite on the side move last settled on, so the
// drawn facing and AimDirection never disagree.
func (p *Player) updateFacing(in Input) {
	if in.Held(ActionMoveLeft) || in.Held(ActionMoveRight) {
		p.flipped = p.facingLeft
	}
}

// AimDirection points along the move axis the player last walked.
func (p *Player) AimDirection() cp.Vector {
	left := moveAxis(p.dir)
	if p.facingLeft {
		return left
	}
	return left.Neg()
}

func (p *Player) Tag() component.Tag { return component.TagPlayer }

// BeginCollision ends a jump on landing, takes bullet damage once, and
// tracks the level exit consoles.
func (p *Player) BeginCollision(other Entity) {
	if p == nil || other == nil {
		return
	}
	switch other.Tag() {
	case component.TagNone, component.TagPressurePlate, component.TagCrate, component.TagEnemy, component.TagDoor:
		if p.jumping {
			p.setState(stateIdle)
		}
	case component.TagBullet:
		d, ok := other.(Damager)
		if !ok || d.Target() != component.TagPlayer || d.Damage() <= 0 {
			return
		}
		dmg := d.ConsumeDamage()
		pos := p.body.Position()
		p.health.ApplyDamage(dmg, component.DamageEvent{
			Source: component.TagBullet,
			Target: component.TagPlayer,
			PosX:   pos.X,
			PosY:   pos.Y,
		})
		if p.sounds != nil {
			p.sounds.Play(SoundHurt)
		}
		if !p.health.IsAlive() {
			log.Printf("player: killed")
		}
	case component.TagNextObject:
		p.touchingNext++
	case component.TagWinObject:
		p.touchingWin++
	case component.TagPickup:
		if pk, ok := other.(Pickupable); ok {
			pk.ApplyTo(p)
		}
	}
}

func (p *Player) EndCollision(other Entity) {
	if p == nil || other == nil {
		return
	}
	switch other.Tag() {
	case component.TagNextObject:
		if p.touchingNext > 0 {
			p.touchingNext--
		}
	case component.TagWinObject:
		if p.touchingWin > 0 {
			p.touchingWin--
		}
	}
}

func (p *Player) Body() *PhysicsBody {
	if p == nil {
		return nil
	}
	return p.body
}

func (p *Player) Position() cp.Vector {
	return p.Body().Position()
}

func (p *Player) Health() *component.Health {
	if p == nil {
		return nil
	}
	return p.health
}

func (p *Player) Gun() *Gun {
	if p == nil {
		return nil
	}
	return p.gun
}

func (p *Player) Gravity() *GravityController {
	if p == nil {
		return nil
	}
	return p.gravity
}

func (p *Player) Animator() *component.Animator {
	if p == nil {
		return nil
	}
	return p.anim
}

// Direction is the player's own gravity direction. It lags the world's while
// the gravity lock is on.
func (p *Player) Direction() Direction {
	if p == nil {
		return GravityDown
	}
	return p.dir
}

func (p *Player) Locked() bool { return p != nil && p.locked }
func (p *Player) Jumping() bool { return p != nil && p.jumping }
func (p *Player) Flipped() bool { return p != nil && p.flipped }
func (p *Player) Dead() bool { return p == nil || !p.health.IsAlive() }
func (p *Player) StateName() string {
	if p == nil || p.state == nil {
		return ""
	}
	return p.state.Name()
}

// TouchingExit reports whether Interact would end the level now.
func (p *Player) TouchingExit() (next, win bool) {
	if p == nil {
		return false, false
	}
	return p.touchingNext > 0, p.touchingWin > 0
}

// EndRequest returns the end state the player asked for and whether it was
// the final console.
func (p *Player) EndRequest() (EndState, bool) {
	if p == nil {
		return EndNone, false
	}
	return p.end, p.final
}
