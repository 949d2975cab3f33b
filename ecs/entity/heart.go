package entity

import (
	"fmt"

	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/prefabs"
)

// NewFallenHeart creates a heart centered on (x, y) falling at Heart.Speed.
// It only reacts to the base paddle, granting one life through lives.
func NewFallenHeart(w *ecs.World, spec *prefabs.GameSpec, art Art, lives *common.Counter, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("fallen heart: nil game spec")
	}
	heart := ecs.CreateEntity(w)

	transform := &component.Transform{Width: spec.Heart.Size, Height: spec.Heart.Size}
	transform.SetCenter(x, y)
	if err := ecs.Add(w, heart, component.TransformComponent.Kind(), transform); err != nil {
		return 0, fmt.Errorf("fallen heart: add transform: %w", err)
	}
	if err := ecs.Add(w, heart, component.VelocityComponent.Kind(), &component.Velocity{Y: spec.Heart.Speed}); err != nil {
		return 0, fmt.Errorf("fallen heart: add velocity: %w", err)
	}
	if err := ecs.Add(w, heart, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Type: component.BodyDynamic}); err != nil {
		return 0, fmt.Errorf("fallen heart: add physics body: %w", err)
	}
	if err := ecs.Add(w, heart, component.LifePickupComponent.Kind(), &component.LifePickup{
		Lives:     lives,
		RemoveTag: component.TagFallenHeartToRemove,
	}); err != nil {
		return 0, fmt.Errorf("fallen heart: add life pickup: %w", err)
	}
	if err := ecs.Add(w, heart, component.CollisionFilterComponent.Kind(), &component.CollisionFilter{Only: component.TagBasePaddle}); err != nil {
		return 0, fmt.Errorf("fallen heart: add collision filter: %w", err)
	}
	if err := ecs.Add(w, heart, component.TagComponent.Kind(), &component.Tag{Name: component.TagFallenHeart}); err != nil {
		return 0, fmt.Errorf("fallen heart: add tag: %w", err)
	}
	if err := ecs.Add(w, heart, component.LayerComponent.Kind(), &component.Layer{Index: component.LayerDefault}); err != nil {
		return 0, fmt.Errorf("fallen heart: add layer: %w", err)
	}
	if err := addSprite(w, heart, art.Heart); err != nil {
		return 0, fmt.Errorf("fallen heart: %w", err)
	}

	return heart, nil
}
