package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

// CollisionSystem applies the responses of both parties of every contact
// reported by the physics step, in the order the contacts began.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain(ecs.EventCollision) {
		contact, ok := evt.Data.(ecs.CollisionEvent)
		if !ok {
			continue
		}
		s.resolve(w, contact)
	}
}

func (s *CollisionSystem) resolve(w *ecs.World, contact ecs.CollisionEvent) {
	a, b := contact.A, contact.B
	if !ecs.IsAlive(w, a) || !ecs.IsAlive(w, b) {
		return
	}
	if !accepts(w, a, b) || !accepts(w, b, a) {
		return
	}

	// Snapshot both sides first: a brick strategy may destroy the brick and
	// spawn new entities before the other side responds.
	hitA := snapshot(w, a, b)
	hitB := snapshot(w, b, a)

	respond(w, a, contact.Normal, hitA)
	respond(w, b, contact.Normal.Neg(), hitB)
}

// accepts reports whether e's collision filter lets it touch other.
func accepts(w *ecs.World, e, other ecs.Entity) bool {
	filter, ok := ecs.Get(w, e, component.CollisionFilterComponent.Kind())
	if !ok || filter.Only == "" {
		return true
	}
	return tagName(w, other) == filter.Only
}

func tagName(w *ecs.World, e ecs.Entity) string {
	tag, ok := ecs.Get(w, e, component.TagComponent.Kind())
	if !ok {
		return ""
	}
	return tag.Name
}

// snapshot builds the strategy payload for a brick e hit by other. It is nil
// when e is not a brick or other is one.
func snapshot(w *ecs.World, e, other ecs.Entity) *component.Collision {
	if !ecs.Has(w, e, component.BrickComponent.Kind()) || ecs.Has(w, other, component.BrickComponent.Kind()) {
		return nil
	}
	c := &component.Collision{
		Brick:    uint64(e),
		Other:    uint64(other),
		OtherTag: tagName(w, other),
	}
	if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		c.CenterX, c.CenterY = transform.Center()
	}
	return c
}

// respond applies e's own reaction to a contact. normal points away from e
// toward the entity it touched.
func respond(w *ecs.World, e ecs.Entity, normal cp.Vector, hit *component.Collision) {
	if hit != nil {
		if brick, ok := ecs.Get(w, e, component.BrickComponent.Kind()); ok && brick.Strategy != nil {
			brick.Strategy.OnCollision(hit)
		}
	}
	if !ecs.IsAlive(w, e) {
		return
	}

	if bounce, ok := ecs.Get(w, e, component.BounceComponent.Kind()); ok {
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel.Set(common.Reflect(vel.Vector(), normal))
			_ = ecs.Add(w, e, component.VelocityComponent.Kind(), vel)
		}
		bounce.Collisions++
		_ = ecs.Add(w, e, component.BounceComponent.Kind(), bounce)
		if audio, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
			audio.Play = true
		}
	}

	if limit, ok := ecs.Get(w, e, component.HitLimitComponent.Kind()); ok && limit.Remaining > 0 {
		limit.Remaining--
		_ = ecs.Add(w, e, component.HitLimitComponent.Kind(), limit)
		if limit.Remaining == 0 {
			retag(w, e, limit.RemoveTag)
		}
	}

	if pickup, ok := ecs.Get(w, e, component.LifePickupComponent.Kind()); ok && !pickup.Collected {
		pickup.Collected = true
		pickup.Lives.Increment()
		_ = ecs.Add(w, e, component.LifePickupComponent.Kind(), pickup)
		retag(w, e, pickup.RemoveTag)
	}
}

func retag(w *ecs.World, e ecs.Entity, name string) {
	if name == "" {
		return
	}
	_ = ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Name: name})
}
