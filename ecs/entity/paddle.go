package entity

import (
	"fmt"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/prefabs"
)

// NewPaddle creates the base paddle centered horizontally, BottomOffset
// pixels above the bottom of the window.
func NewPaddle(w *ecs.World, spec *prefabs.GameSpec, art Art) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("paddle: nil game spec")
	}
	return newPaddle(w, spec, art, "paddle", component.TagBasePaddle, spec.Window.Width/2, spec.Window.Height-spec.Paddle.BottomOffset)
}

// NewSpecialPaddle creates an extra paddle in the middle of the window that
// is removed after absorbing SpecialPaddle.Hits collisions.
func NewSpecialPaddle(w *ecs.World, spec *prefabs.GameSpec, art Art) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("special paddle: nil game spec")
	}
	paddle, err := newPaddle(w, spec, art, "special paddle", component.TagSpecialPaddle, spec.Window.Width/2, spec.Window.Height/2)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, paddle, component.HitLimitComponent.Kind(), &component.HitLimit{
		Remaining: spec.SpecialPaddle.Hits,
		RemoveTag: component.TagSpecialPaddleToRemove,
	}); err != nil {
		return 0, fmt.Errorf("special paddle: add hit limit: %w", err)
	}
	return paddle, nil
}

func newPaddle(w *ecs.World, spec *prefabs.GameSpec, art Art, name, tag string, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	transform := &component.Transform{Width: spec.Paddle.Width, Height: spec.Paddle.Height}
	transform.SetCenter(x, y)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transform); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", name, err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("%s: add velocity: %w", name, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Type: component.BodyKinematic}); err != nil {
		return 0, fmt.Errorf("%s: add physics body: %w", name, err)
	}
	if err := ecs.Add(w, e, component.PaddleControlComponent.Kind(), &component.PaddleControl{
		Speed:       spec.Paddle.Speed,
		MinGap:      spec.Paddle.MinGap,
		WallWidth:   spec.Walls.Width,
		WindowWidth: spec.Window.Width,
	}); err != nil {
		return 0, fmt.Errorf("%s: add paddle control: %w", name, err)
	}
	if err := ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Name: tag}); err != nil {
		return 0, fmt.Errorf("%s: add tag: %w", name, err)
	}
	if err := ecs.Add(w, e, component.LayerComponent.Kind(), &component.Layer{Index: component.LayerDefault}); err != nil {
		return 0, fmt.Errorf("%s: add layer: %w", name, err)
	}
	if err := addSprite(w, e, art.Paddle); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return e, nil
}
