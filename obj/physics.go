package obj

import (
	"math"

	"github.com/jakecoffman/cp"
)

const collisionTypeEntity cp.CollisionType = iota + 1

// PhysicsConfig tunes the simulation.
type PhysicsConfig struct {
	Iterations int     `yaml:"iterations"`
	SleepTime  float64 `yaml:"sleep_time"`
}

func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{Iterations: 20, SleepTime: 0.5}
}

// BodyType selects how a body is simulated.
type BodyType int

const (
	BodyDynamic BodyType = iota
	BodyStatic
	BodyKinematic
)

// BodyDef describes a box body. Half extents follow the level format, so a
// HalfWidth of 1 produces a box two units wide.
type BodyDef struct {
	Type          BodyType
	Position      cp.Vector
	Angle         float64
	HalfWidth     float64
	HalfHeight    float64
	Density       float64
	Friction      float64
	Sensor        bool
	FixedRotation bool
	NoGravity     bool
	Owner         Entity
}

// PhysicsWorld owns the chipmunk space and every body in it.
type PhysicsWorld struct {
	space      *cp.Space
	cfg        PhysicsConfig
	dispatcher ContactDispatcher

	stepping bool
	locked   int
	pending  []*PhysicsBody
	sleeping bool
}

// NewPhysicsWorld creates a space with the given gravity and installs the
// contact dispatcher.
func NewPhysicsWorld(cfg PhysicsConfig, gravity cp.Vector) *PhysicsWorld {
	if cfg.Iterations <= 0 {
		cfg.Iterations = DefaultPhysicsConfig().Iterations
	}
	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(gravity)
	pw := &PhysicsWorld{space: space, cfg: cfg}
	pw.SetAllowSleeping(true)
	pw.setupHandlers()
	return pw
}

func (pw *PhysicsWorld) setupHandlers() {
	handler := pw.space.NewCollisionHandler(collisionTypeEntity, collisionTypeEntity)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		a, b := arb.Shapes()
		return world.dispatcher.Begin(ownerOf(a), ownerOf(b))
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return
		}
		a, b := arb.Shapes()
		world.dispatcher.End(ownerOf(a), ownerOf(b))
	}
}

// ownerOf resolves the entity attached to a shape, or nil.
func ownerOf(shape *cp.Shape) Entity {
	if shape == nil {
		return nil
	}
	pb, ok := shape.UserData.(*PhysicsBody)
	if !ok || pb == nil {
		return nil
	}
	return pb.owner
}

// CreateBody adds a box body described by def.
func (pw *PhysicsWorld) CreateBody(def BodyDef) *PhysicsBody {
	if pw == nil {
		return nil
	}
	w := def.HalfWidth * 2
	h := def.HalfHeight * 2
	if w <= 0 || h <= 0 {
		return nil
	}

	var body *cp.Body
	switch def.Type {
	case BodyStatic:
		body = cp.NewStaticBody()
	case BodyKinematic:
		body = cp.NewKinematicBody()
	default:
		density := def.Density
		if density <= 0 {
			density = 1
		}
		mass := density * w * h
		moment := math.Inf(1)
		if !def.FixedRotation {
			moment = cp.MomentForBox(mass, w, h)
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(def.Position)
	body.SetAngle(def.Angle)

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(def.Friction)
	shape.SetSensor(def.Sensor)
	shape.SetCollisionType(collisionTypeEntity)

	pb := &PhysicsBody{
		world:        pw,
		body:         body,
		shape:        shape,
		owner:        def.Owner,
		halfW:        def.HalfWidth,
		halfH:        def.HalfHeight,
		gravityScale: 1,
		enabled:      true,
	}
	if def.NoGravity {
		pb.gravityScale = 0
	}
	body.UserData = pb
	shape.UserData = pb
	if def.Type == BodyDynamic {
		body.SetVelocityUpdateFunc(pb.updateVelocity)
	}

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	return pb
}

// DestroyBody removes a body from the space. Removal requested while the
// space is stepping or querying is deferred until it is unlocked.
func (pw *PhysicsWorld) DestroyBody(pb *PhysicsBody) {
	if pw == nil || pb == nil || pb.removed {
		return
	}
	if pw.stepping || pw.locked > 0 {
		pw.pending = append(pw.pending, pb)
		return
	}
	pw.remove(pb)
}

func (pw *PhysicsWorld) remove(pb *PhysicsBody) {
	if pb.removed {
		return
	}
	pb.removed = true
	pw.space.RemoveShape(pb.shape)
	pw.space.RemoveBody(pb.body)
}

func (pw *PhysicsWorld) flushPending() {
	if len(pw.pending) == 0 {
		return
	}
	pending := pw.pending
	pw.pending = nil
	for _, pb := range pending {
		pw.remove(pb)
	}
}

// Step advances the simulation once. There is no sub-stepping.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || dt <= 0 {
		return
	}
	pw.stepping = true
	pw.space.Step(dt)
	pw.stepping = false
	pw.flushPending()
}

// Stepping reports whether a step is in progress.
func (pw *PhysicsWorld) Stepping() bool {
	return pw != nil && pw.stepping
}

// SetGravity sets the global gravity vector.
func (pw *PhysicsWorld) SetGravity(g cp.Vector) {
	if pw == nil {
		return
	}
	pw.space.SetGravity(g)
}

func (pw *PhysicsWorld) Gravity() cp.Vector {
	if pw == nil {
		return cp.Vector{}
	}
	return pw.space.Gravity()
}

// SetAllowSleeping toggles body sleeping. Disallowing it wakes every body.
func (pw *PhysicsWorld) SetAllowSleeping(allow bool) {
	if pw == nil {
		return
	}
	pw.sleeping = allow
	if allow && pw.cfg.SleepTime > 0 {
		pw.space.SleepTimeThreshold = pw.cfg.SleepTime
		return
	}
	pw.space.SleepTimeThreshold = cp.INFINITY
	pw.space.EachBody(func(body *cp.Body) {
		body.Activate()
	})
}

func (pw *PhysicsWorld) AllowSleeping() bool {
	return pw != nil && pw.sleeping
}

// ApplyImpulseToDynamicBodies applies the same impulse to the centre of every
// dynamic body.
func (pw *PhysicsWorld) ApplyImpulseToDynamicBodies(impulse cp.Vector) {
	if pw == nil {
		return
	}
	pw.space.EachBody(func(body *cp.Body) {
		if body.GetType() != cp.BODY_DYNAMIC {
			return
		}
		body.ApplyImpulseAtWorldPoint(impulse, body.Position())
	})
}

// EachBody calls f for every wrapped body in the space. The bodies are
// collected first, so f may destroy them.
func (pw *PhysicsWorld) EachBody(f func(pb *PhysicsBody)) {
	if pw == nil || f == nil {
		return
	}
	var bodies []*PhysicsBody
	pw.space.EachBody(func(body *cp.Body) {
		if pb, ok := body.UserData.(*PhysicsBody); ok && pb != nil {
			bodies = append(bodies, pb)
		}
	})
	for _, pb := range bodies {
		f(pb)
	}
}

// DebugDraw renders every shape through a chipmunk drawer.
func (pw *PhysicsWorld) DebugDraw(drawer cp.Drawer) {
	if pw == nil || drawer == nil {
		return
	}
	cp.DrawSpace(pw.space, drawer)
}

// PhysicsBody wraps one chipmunk body and its box shape.
type PhysicsBody struct {
	world        *PhysicsWorld
	body         *cp.Body
	shape        *cp.Shape
	owner        Entity
	halfW, halfH float64
	gravityScale float64
	enabled      bool
	removed      bool
}

func (pb *PhysicsBody) updateVelocity(body *cp.Body, gravity cp.Vector, damping, dt float64) {
	cp.BodyUpdateVelocity(body, gravity.Mult(pb.gravityScale), damping, dt)
}

func (pb *PhysicsBody) Owner() Entity {
	if pb == nil {
		return nil
	}
	return pb.owner
}

func (pb *PhysicsBody) Position() cp.Vector {
	if pb == nil {
		return cp.Vector{}
	}
	return pb.body.Position()
}

func (pb *PhysicsBody) SetPosition(p cp.Vector) {
	if pb == nil {
		return
	}
	pb.body.SetPosition(p)
}

// Translate moves the body by delta without touching its velocity.
func (pb *PhysicsBody) Translate(delta cp.Vector) {
	if pb == nil {
		return
	}
	pb.body.SetPosition(pb.body.Position().Add(delta))
}

func (pb *PhysicsBody) Angle() float64 {
	if pb == nil {
		return 0
	}
	return pb.body.Angle()
}

func (pb *PhysicsBody) SetAngle(a float64) {
	if pb == nil {
		return
	}
	pb.body.SetAngle(a)
}

func (pb *PhysicsBody) Velocity() cp.Vector {
	if pb == nil {
		return cp.Vector{}
	}
	return pb.body.Velocity()
}

func (pb *PhysicsBody) SetVelocity(v cp.Vector) {
	if pb == nil {
		return
	}
	pb.body.SetVelocityVector(v)
}

// ApplyImpulse applies a world-space impulse at the centre of mass.
func (pb *PhysicsBody) ApplyImpulse(impulse cp.Vector) {
	if pb == nil || pb.body.GetType() != cp.BODY_DYNAMIC {
		return
	}
	pb.body.ApplyImpulseAtWorldPoint(impulse, pb.body.Position())
}

func (pb *PhysicsBody) GravityScale() float64 {
	if pb == nil {
		return 0
	}
	return pb.gravityScale
}

// SetGravityScale scales how much world gravity affects this body.
func (pb *PhysicsBody) SetGravityScale(s float64) {
	if pb == nil {
		return
	}
	pb.gravityScale = s
	pb.body.Activate()
}

func (pb *PhysicsBody) Mass() float64 {
	if pb == nil || pb.body.GetType() != cp.BODY_DYNAMIC {
		return 0
	}
	return pb.body.Mass()
}

// HalfExtents returns the half width and height of the box.
func (pb *PhysicsBody) HalfExtents() (float64, float64) {
	if pb == nil {
		return 0, 0
	}
	return pb.halfW, pb.halfH
}

// SetCollisionEnabled makes the shape collide with everything or nothing.
func (pb *PhysicsBody) SetCollisionEnabled(enabled bool) {
	if pb == nil {
		return
	}
	pb.enabled = enabled
	if enabled {
		pb.shape.SetFilter(cp.SHAPE_FILTER_ALL)
	} else {
		pb.shape.SetFilter(cp.SHAPE_FILTER_NONE)
	}
}

func (pb *PhysicsBody) CollisionEnabled() bool {
	return pb != nil && pb.enabled
}

func (pb *PhysicsBody) Sensor() bool {
	return pb != nil && pb.shape.Sensor()
}

// Removed reports whether the body has left the space.
func (pb *PhysicsBody) Removed() bool {
	return pb == nil || pb.removed
}

// Destroy removes the body from its world.
func (pb *PhysicsBody) Destroy() {
	if pb == nil || pb.world == nil {
		return
	}
	pb.world.DestroyBody(pb)
}
