package system

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravshift/common"
	"github.com/milk9111/gravshift/config"
	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/obj"
)

// ErrNoPlayerSpawn is returned for levels without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("system: level has no player spawn")

// DynamicObject is anything in the dynamic list: crates, debris and pickups.
type DynamicObject interface {
	obj.Entity
	obj.Killable
	Update(dt float64)
	Body() *obj.PhysicsBody
}

// WorldOptions are the collaborators a world is built with.
type WorldOptions struct {
	Tuning  config.Tuning
	Rand    *rand.Rand
	Sounds  obj.SoundPlayer
	ScreenW int
	ScreenH int
}

// World is one running level: the physics space and everything in it.
type World struct {
	Name   string
	Data   *levels.Data
	Tuning config.Tuning

	Physics *obj.PhysicsWorld
	Gravity *obj.GravityController
	Camera  *obj.Camera
	Bullets *obj.BulletManager
	Player  *obj.Player

	Statics  []*obj.Prop
	Doors    []*obj.Door
	Plates   []*obj.PressurePlate
	Dynamics []DynamicObject
	Enemies  []*obj.Enemy

	rng       *rand.Rand
	sounds    obj.SoundPlayer
	toDestroy []*obj.PhysicsBody
	paused    bool
	end       obj.EndState
	final     bool
}

// NewWorld builds a world from parsed level data.
func NewWorld(name string, data *levels.Data, opts WorldOptions) (*World, error) {
	if data == nil {
		return nil, levels.ErrLevelNotFound
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	if opts.ScreenW <= 0 || opts.ScreenH <= 0 {
		opts.ScreenW, opts.ScreenH = common.BaseWidth, common.BaseHeight
	}
	t := opts.Tuning
	w := &World{
		Name:   name,
		Data:   data,
		Tuning: t,
		rng:    rng,
		sounds: opts.Sounds,
	}
	w.Physics = obj.NewPhysicsWorld(t.Physics, obj.GravityDown.Unit().Mult(t.Gravity.NominalMultiplier))
	w.Camera = obj.NewCamera(t.Camera, opts.ScreenW, opts.ScreenH, common.PixelsPerUnit)
	w.Camera.SetAbovePlayer(true)
	w.Gravity = obj.NewGravityController(t.Gravity, w.Physics, w.Camera)
	if start := (cp.Vector{X: data.GravityX, Y: data.GravityY}); start != (cp.Vector{}) {
		if err := w.Gravity.SetStartVector(start); err != nil {
			return nil, fmt.Errorf("system: %s: start gravity: %w", name, err)
		}
		if w.Gravity.Direction() == obj.GravityUp {
			w.Camera.SetAbovePlayer(false)
		}
	}
	w.Bullets = obj.NewBulletManager(w.Physics, t.Bullet)

	if err := w.spawn(data); err != nil {
		return nil, err
	}
	wireCombat(w.Player, w.Camera)
	w.Camera.SnapTo(w.Player.Position().X, w.Player.Position().Y)
	return w, nil
}

// Update runs one frame.
func (w *World) Update(in obj.Input, dt float64) {
	if w == nil {
		return
	}
	if in.Pressed(obj.ActionPause) && w.end == obj.EndNone {
		w.paused = !w.paused
	}
	if w.paused || w.end != obj.EndNone {
		return
	}

	w.Physics.Step(dt)
	w.Player.Update(in, dt)

	for _, pp := range w.Plates {
		pp.Update()
	}
	for _, d := range w.Doors {
		d.Update(dt)
	}

	writeIdx := 0
	for _, d := range w.Dynamics {
		d.Update(dt)
		if d.TimeToDie() {
			w.toDestroy = append(w.toDestroy, d.Body())
			continue
		}
		w.Dynamics[writeIdx] = d
		writeIdx++
	}
	clear(w.Dynamics[writeIdx:])
	w.Dynamics = w.Dynamics[:writeIdx]

	ctx := obj.EnemyContext{Gravity: w.Gravity.Snapshot(), Player: w.Player, Dt: dt}
	writeIdx = 0
	for _, e := range w.Enemies {
		e.Update(ctx)
		if e.TimeToDie() {
			w.toDestroy = append(w.toDestroy, e.Body())
			continue
		}
		w.Enemies[writeIdx] = e
		writeIdx++
	}
	clear(w.Enemies[writeIdx:])
	w.Enemies = w.Enemies[:writeIdx]

	w.Bullets.Update(dt)
	w.Physics.SetAllowSleeping(true)
	w.sweep()

	pos := w.Player.Position()
	w.Camera.Update(pos.X, pos.Y, dt)

	w.evaluateEnd()
}

func (w *World) sweep() {
	for _, b := range w.toDestroy {
		b.Destroy()
	}
	clear(w.toDestroy)
	w.toDestroy = w.toDestroy[:0]
}

func (w *World) evaluateEnd() {
	if w.Player.Dead() {
		w.end = obj.EndLose
		return
	}
	if end, final := w.Player.EndRequest(); end != obj.EndNone {
		w.end = end
		w.final = final
	}
}

// Teardown releases every body. The world must not be updated afterwards.
func (w *World) Teardown() {
	if w == nil {
		return
	}
	w.Bullets.Clear()
	w.Physics.EachBody(func(pb *obj.PhysicsBody) {
		pb.Destroy()
	})
	w.Dynamics = nil
	w.Enemies = nil
	w.Plates = nil
	w.Doors = nil
	w.Statics = nil
}

func (w *World) Paused() bool {
	return w != nil && w.paused
}

func (w *World) SetPaused(paused bool) {
	if w == nil {
		return
	}
	w.paused = paused
}

// End reports how the level finished and whether it was the last one.
func (w *World) End() (obj.EndState, bool) {
	if w == nil {
		return obj.EndNone, false
	}
	return w.end, w.final
}

// Hearts is the player's health clamped to the heart bar.
func (w *World) Hearts() int {
	if w == nil {
		return 0
	}
	return common.ClampInt(w.Player.Health().CurrentHP(), 0, common.MaxHearts)
}

// HeartFull reports whether heart i of the bar is filled. Out of range
// indices are empty.
func (w *World) HeartFull(i int) bool {
	if i < 0 || i >= common.MaxHearts {
		return false
	}
	return i < w.Hearts()
}

// Background is the decorative geometry of the level.
func (w *World) Background() []levels.Object {
	if w == nil || w.Data == nil {
		return nil
	}
	return w.Data.Background
}
