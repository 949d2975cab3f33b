package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

func TestPhysicsReportsEachContactOnce(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	ball := newBall(t, w, spec, cp.Vector{Y: 600})
	transform, _ := ecs.Get(w, ball, component.TransformComponent.Kind())
	transform.SetCenter(100, 100)
	floor := newBlock(t, w, 50, 130, 100, 10)

	ps := NewPhysicsSystem()
	var contacts []ecs.CollisionEvent
	for i := 0; i < 10; i++ {
		ps.Update(w)
		for _, evt := range w.Events().Drain(ecs.EventCollision) {
			contacts = append(contacts, evt.Data.(ecs.CollisionEvent))
		}
	}

	require.Len(t, contacts, 1)
	contact := contacts[0]
	require.ElementsMatch(t, []ecs.Entity{ball, floor}, []ecs.Entity{contact.A, contact.B})
	if contact.A == ball {
		require.Greater(t, contact.Normal.Y, 0.0)
	} else {
		require.Less(t, contact.Normal.Y, 0.0)
	}

	_, y := transform.Center()
	require.InDelta(t, 200.0, y, 0.5, "contacts never slow the ball down")
}

func TestPhysicsDropsBodiesOfRemovedEntities(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	ball := newBall(t, w, spec, cp.Vector{X: 60})
	ps := NewPhysicsSystem()

	ps.Update(w)
	body, _ := ecs.Get(w, ball, component.PhysicsBodyComponent.Kind())
	require.NotNil(t, body.Body)
	require.Len(t, ps.entities, 1)

	require.True(t, ecs.DestroyEntity(w, ball))
	ps.Update(w)
	require.Empty(t, ps.entities)
	require.Empty(t, ps.shapes)

	ps.Reset()
	require.NotNil(t, ps.Space())
	require.Empty(t, ps.entities)
}

func TestPhysicsMovesPaddleFromVelocity(t *testing.T) {
	w := ecs.NewWorld()
	paddle := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, paddle, component.TransformComponent.Kind(), &component.Transform{X: 300, Y: 455, Width: 100, Height: 15}))
	require.NoError(t, ecs.Add(w, paddle, component.VelocityComponent.Kind(), &component.Velocity{X: -60}))
	require.NoError(t, ecs.Add(w, paddle, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Type: component.BodyKinematic}))

	ps := NewPhysicsSystem()
	for i := 0; i < 60; i++ {
		ps.Update(w)
	}

	transform, _ := ecs.Get(w, paddle, component.TransformComponent.Kind())
	require.InDelta(t, 240.0, transform.X, 0.5)
	require.InDelta(t, 455.0, transform.Y, 1e-6)
}
