package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/common"
	"github.com/milk9111/gravshift/component"
)

type recordingSounds struct {
	played  map[string]int
	playing map[string]bool
}

func newRecordingSounds() *recordingSounds {
	return &recordingSounds{played: map[string]int{}, playing: map[string]bool{}}
}

func (r *recordingSounds) Play(name string) {
	r.played[name]++
	r.playing[name] = true
}

func (r *recordingSounds) IsPlaying(name string) bool { return r.playing[name] }

type recordingCamera struct {
	above []bool
	warps int
}

func (c *recordingCamera) SetAbovePlayer(above bool) { c.above = append(c.above, above) }
func (c *recordingCamera) Warp() { c.warps++ }

type playerFixture struct {
	world   *PhysicsWorld
	gravity *GravityController
	bullets *BulletManager
	camera  *recordingCamera
	sounds  *recordingSounds
	player  *Player
}

// newPlayerFixture builds a player at the origin of a weightless world so
// positions only change through the player's own movement.
func newPlayerFixture(dir Direction) *playerFixture {
	return newPlayerFixtureAt(dir, cp.Vector{})
}

// newPlayerFixtureAt spawns the player at pos. Shapes are only reindexed by
// a step, so anything queried before stepping must be created in place.
func newPlayerFixtureAt(dir Direction, pos cp.Vector) *playerFixture {
	f := &playerFixture{
		world:  newTestWorld(),
		camera: &recordingCamera{},
		sounds: newRecordingSounds(),
	}
	f.gravity = NewGravityController(DefaultGravityConfig(), &fakeGravityWorld{}, f.camera)
	f.gravity.SetDirection(dir)
	f.bullets = NewBulletManager(f.world, DefaultBulletConfig())
	f.player = NewPlayer(f.world, DefaultPlayerConfig(), pos, f.gravity, f.bullets, f.camera, f.sounds)
	return f
}

func nearVec(a, b cp.Vector) bool {
	return common.NearlyEqual(a.X, b.X, 1e-9) && common.NearlyEqual(a.Y, b.Y, 1e-9)
}

func TestPlayerMovementFollowsGravity(t *testing.T) {
	cases := []struct {
		dir       Direction
		wantLeft  cp.Vector
		wantRight cp.Vector
	}{
		{GravityDown, cp.Vector{X: -4}, cp.Vector{X: 4}},
		{GravityUp, cp.Vector{X: 4}, cp.Vector{X: -4}},
		{GravityLeft, cp.Vector{Y: 4}, cp.Vector{Y: -4}},
		{GravityRight, cp.Vector{Y: -4}, cp.Vector{Y: 4}},
	}
	for _, c := range cases {
		t.Run(c.dir.String(), func(t *testing.T) {
			f := newPlayerFixture(c.dir)
			f.player.Update(Hold(ActionMoveLeft), 0.5)
			if got := f.player.Position(); !nearVec(got, c.wantLeft) {
				t.Fatalf("left: position = %v, want %v", got, c.wantLeft)
			}
			if f.player.StateName() != "running" {
				t.Fatalf("state = %q, want running", f.player.StateName())
			}

			f.player.Body().SetPosition(cp.Vector{})
			f.player.Update(Hold(ActionMoveRight), 0.5)
			if got := f.player.Position(); !nearVec(got, c.wantRight) {
				t.Fatalf("right: position = %v, want %v", got, c.wantRight)
			}

			if !common.NearlyEqual(f.player.Body().Angle(), c.dir.BodyAngle(), 1e-9) {
				t.Fatalf("angle = %v, want %v", f.player.Body().Angle(), c.dir.BodyAngle())
			}

			f.player.Update(Input{}, 0.1)
			if f.player.StateName() != "idle" {
				t.Fatalf("state = %q, want idle", f.player.StateName())
			}
		})
	}
}

// facingSide is the world-space unit vector toward the side drawn as the
// player's front.
func facingSide(p *Player) cp.Vector {
	sin, cos := math.Sincos(p.Body().Angle())
	side := cp.Vector{X: cos, Y: sin}
	if p.Flipped() {
		return side.Neg()
	}
	return side
}

func TestPlayerFacingMatchesAim(t *testing.T) {
	cases := []struct {
		name     string
		in       Input
		wantLeft bool
	}{
		{"left", Hold(ActionMoveLeft), true},
		{"right", Hold(ActionMoveRight), false},
		{"both held", Hold(ActionMoveLeft, ActionMoveRight), false},
	}
	for _, dir := range []Direction{GravityDown, GravityUp, GravityLeft, GravityRight} {
		for _, c := range cases {
			t.Run(dir.String()+"/"+c.name, func(t *testing.T) {
				f := newPlayerFixture(dir)
				f.player.Update(c.in, common.FrameTime)

				if f.player.Flipped() != c.wantLeft {
					t.Fatalf("flipped = %v, want %v", f.player.Flipped(), c.wantLeft)
				}
				aim := f.player.AimDirection()
				want := moveAxis(dir)
				if !c.wantLeft {
					want = want.Neg()
				}
				if !nearVec(aim, want) {
					t.Fatalf("aim = %v, want %v", aim, want)
				}
				if got := facingSide(f.player); !nearVec(got, aim) {
					t.Fatalf("drawn facing = %v, aim = %v", got, aim)
				}
			})
		}
	}
}

func TestPlayerGravityPressSteersCamera(t *testing.T) {
	f := newPlayerFixture(GravityDown)
	f.camera.above = nil

	f.player.Update(Press(ActionGravityUp), common.FrameTime)
	if f.gravity.Direction() != GravityUp || f.player.Direction() != GravityUp {
		t.Fatalf("world=%v player=%v, want up", f.gravity.Direction(), f.player.Direction())
	}
	f.player.Update(Press(ActionGravityLeft), common.FrameTime)
	f.player.Update(Press(ActionGravityDown), common.FrameTime)

	want := []bool{false, true}
	if len(f.camera.above) != len(want) {
		t.Fatalf("camera calls = %v, want %v", f.camera.above, want)
	}
	for i := range want {
		if f.camera.above[i] != want[i] {
			t.Fatalf("camera calls = %v, want %v", f.camera.above, want)
		}
	}
}

func TestPlayerGravityLock(t *testing.T) {
	f := newPlayerFixture(GravityDown)
	p := f.player

	p.Update(Press(ActionGravityLock), common.FrameTime)
	if !p.Locked() || p.Body().GravityScale() != 0 {
		t.Fatalf("lock: locked=%v scale=%v", p.Locked(), p.Body().GravityScale())
	}

	// Presses while locked move the world, not the player.
	p.Update(Press(ActionGravityLeft), common.FrameTime)
	p.Update(Press(ActionGravityLeft), common.FrameTime)
	if f.gravity.Direction() != GravityLeft || p.Direction() != GravityDown {
		t.Fatalf("world=%v player=%v", f.gravity.Direction(), p.Direction())
	}

	// Jumping is not possible while locked.
	p.Update(Press(ActionJump), common.FrameTime)
	if p.Jumping() {
		t.Fatalf("jumped while locked")
	}

	p.Update(Press(ActionGravityLock), common.FrameTime)
	if p.Locked() || p.Body().GravityScale() != 1 {
		t.Fatalf("unlock: locked=%v scale=%v", p.Locked(), p.Body().GravityScale())
	}
	if p.Direction() != GravityLeft {
		t.Fatalf("player should adopt world gravity on unlock, got %v", p.Direction())
	}
}

func TestPlayerJumpEndsOnLanding(t *testing.T) {
	f := newPlayerFixture(GravityDown)
	p := f.player

	p.Update(Press(ActionJump), common.FrameTime)
	if !p.Jumping() || p.StateName() != "jumping" {
		t.Fatalf("jumping=%v state=%q", p.Jumping(), p.StateName())
	}
	v := p.Body().Velocity()
	if v.Y <= 0 {
		t.Fatalf("jump impulse should push against gravity, velocity %v", v)
	}

	p.Update(Press(ActionJump), common.FrameTime)
	if got := p.Body().Velocity(); got != v {
		t.Fatalf("second jump applied another impulse: %v -> %v", v, got)
	}

	p.BeginCollision(&stubEntity{tag: component.TagBullet})
	if !p.Jumping() {
		t.Fatalf("bullets do not count as ground")
	}
	p.BeginCollision(&stubEntity{tag: component.TagNone})
	if p.Jumping() || p.StateName() != "idle" {
		t.Fatalf("landing: jumping=%v state=%q", p.Jumping(), p.StateName())
	}
}

func TestPlayerBulletDamageOnce(t *testing.T) {
	f := newPlayerFixture(GravityDown)
	p := f.player
	b := f.bullets.Fire(cp.Vector{X: 1}, cp.Vector{X: 5}, 3, component.TagPlayer, 10)

	p.BeginCollision(b)
	p.BeginCollision(b)
	if got := p.Health().CurrentHP(); got != 7 {
		t.Fatalf("hp = %d, want 7", got)
	}
	if f.sounds.played[SoundHurt] != 1 {
		t.Fatalf("hurt played %d times", f.sounds.played[SoundHurt])
	}

	own := f.bullets.Fire(cp.Vector{X: 1}, cp.Vector{X: 5}, 3, component.TagEnemy, 10)
	p.BeginCollision(own)
	if p.Health().CurrentHP() != 7 {
		t.Fatalf("player took damage from a bullet aimed at enemies")
	}
}

func TestPlayerExitConsoles(t *testing.T) {
	cases := []struct {
		name      string
		tag       component.Tag
		wantFinal bool
	}{
		{"next", component.TagNextObject, false},
		{"win", component.TagWinObject, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newPlayerFixture(GravityDown).player
			console := &stubEntity{tag: c.tag}

			p.Update(Press(ActionInteract), common.FrameTime)
			if end, _ := p.EndRequest(); end != EndNone {
				t.Fatalf("interact away from a console ended the level")
			}

			p.BeginCollision(console)
			p.EndCollision(console)
			p.Update(Press(ActionInteract), common.FrameTime)
			if end, _ := p.EndRequest(); end != EndNone {
				t.Fatalf("interact after leaving the console ended the level")
			}

			p.BeginCollision(console)
			p.Update(Press(ActionInteract), common.FrameTime)
			end, final := p.EndRequest()
			if end != EndWin || final != c.wantFinal {
				t.Fatalf("end=%v final=%v, want win final=%v", end, final, c.wantFinal)
			}
		})
	}
}

func TestPlayerFireUsesAmmo(t *testing.T) {
	f := newPlayerFixture(GravityDown)
	p := f.player

	p.Update(Press(ActionFire), common.FrameTime)
	if f.bullets.Len() != 1 || p.Gun().Loaded() != 5 {
		t.Fatalf("bullets=%d loaded=%d", f.bullets.Len(), p.Gun().Loaded())
	}
	if f.sounds.played[SoundShoot] != 1 {
		t.Fatalf("shoot played %d times", f.sounds.played[SoundShoot])
	}
	// Still cooling down.
	p.Update(Press(ActionFire), common.FrameTime)
	if f.bullets.Len() != 1 {
		t.Fatalf("fired during cooldown")
	}
}
