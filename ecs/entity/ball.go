package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/prefabs"
)

// NewBall creates the main ball centered in the window. Its velocity is set
// by the caller.
func NewBall(w *ecs.World, spec *prefabs.GameSpec, art Art) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("ball: nil game spec")
	}
	return newBouncer(w, "ball", component.TagMainBall, spec.Ball.Size, spec.Window.Width/2, spec.Window.Height/2, cp.Vector{}, art, art.Ball)
}

// NewPuck creates a secondary ball centered on (x, y).
func NewPuck(w *ecs.World, spec *prefabs.GameSpec, art Art, x, y float64, velocity cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("puck: nil game spec")
	}
	return newBouncer(w, "puck", component.TagPuck, spec.Ball.Size*spec.Puck.Scale, x, y, velocity, art, art.Puck)
}

func newBouncer(w *ecs.World, name, tag string, size, x, y float64, velocity cp.Vector, art Art, image *ebiten.Image) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	transform := &component.Transform{Width: size, Height: size}
	transform.SetCenter(x, y)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transform); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", name, err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: velocity.X, Y: velocity.Y}); err != nil {
		return 0, fmt.Errorf("%s: add velocity: %w", name, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Type: component.BodyDynamic, Radius: size / 2}); err != nil {
		return 0, fmt.Errorf("%s: add physics body: %w", name, err)
	}
	if err := ecs.Add(w, e, component.BounceComponent.Kind(), &component.Bounce{}); err != nil {
		return 0, fmt.Errorf("%s: add bounce: %w", name, err)
	}
	if err := ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Name: tag}); err != nil {
		return 0, fmt.Errorf("%s: add tag: %w", name, err)
	}
	if err := ecs.Add(w, e, component.LayerComponent.Kind(), &component.Layer{Index: component.LayerDefault}); err != nil {
		return 0, fmt.Errorf("%s: add layer: %w", name, err)
	}
	if err := addSprite(w, e, image); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{Player: art.Collision, Volume: art.Volume}); err != nil {
		return 0, fmt.Errorf("%s: add audio: %w", name, err)
	}

	return e, nil
}
