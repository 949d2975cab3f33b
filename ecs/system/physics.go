package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeMover
)

// FixedStep is the simulated time of one frame at ebiten's default 60 TPS.
const FixedStep = 1.0 / 60.0

// PhysicsSystem integrates velocities with Chipmunk2D and turns new contacts
// into collision events. Contacts never produce impulses: every response
// (bouncing included) is applied by the collision system.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	step          float64

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	contacts []ecs.CollisionEvent
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		step:     FixedStep,
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.pushState(w)

	ps.contacts = ps.contacts[:0]
	ps.space.Step(ps.step)

	ps.syncTransforms(w)
	for _, contact := range ps.contacts {
		w.Events().Push(ecs.Event{Type: ecs.EventCollision, Data: contact})
	}
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	for _, pair := range [][2]cp.CollisionType{
		{collisionTypeMover, collisionTypeSolid},
		{collisionTypeMover, collisionTypeMover},
	} {
		handler := ps.space.NewCollisionHandler(pair[0], pair[1])
		handler.UserData = ps
		handler.BeginFunc = beginContact
	}

	ps.handlersReady = true
}

// beginContact records the first touch of two shapes. Returning false makes
// Chipmunk ignore the pair until the shapes separate, so each contact is
// reported exactly once and never resolved physically.
func beginContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	sys, ok := userData.(*PhysicsSystem)
	if !ok || sys == nil {
		return false
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := sys.shapes[shapeA]
	b, okB := sys.shapes[shapeB]
	if !okA || !okB {
		return false
	}
	sys.contacts = append(sys.contacts, ecs.CollisionEvent{A: a, B: b, Normal: arb.Normal()})
	return false
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if _, exists := ps.entities[e]; exists {
			return
		}
		info := ps.createBodyInfo(transform, bodyComp)
		if info == nil {
			return
		}
		ps.entities[e] = info
		ps.shapes[info.shape] = e

		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
		_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), bodyComp)
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width, height := transform.Width, transform.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		return nil
	}
	cx, cy := transform.Center()

	if bodyComp.Type == component.BodyStatic {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: cx, Y: cy})
		} else {
			bb := cp.BB{L: transform.X, B: transform.Y, R: transform.X + width, T: transform.Y + height}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	var body *cp.Body
	if bodyComp.Type == component.BodyKinematic {
		body = cp.NewKinematicBody()
	} else {
		const mass = 1.0
		moment := cp.MomentForBox(mass, width, height)
		if radius > 0 {
			moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(cp.Vector{X: cx, Y: cy})

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetCollisionType(collisionTypeMover)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// pushState copies positions and velocities set by other systems (paddle
// input, bounces, ball resets) into the bodies before stepping.
func (ps *PhysicsSystem) pushState(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			cx, cy := transform.Center()
			info.body.SetPosition(cp.Vector{X: cx, Y: cy})
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			info.body.SetVelocityVector(vel.Vector())
		}
		info.body.SetAngularVelocity(0)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.SetCenter(pos.X, pos.Y)
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), transform)
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// Reset drops every body so the system can serve a freshly built world.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = newSpace()
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.shapes = make(map[*cp.Shape]ecs.Entity)
	ps.contacts = nil
}
