package entity

import (
	"fmt"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

// NewBrick creates a static brick with its top-left corner at (x, y), bound
// to strategy for the rest of its life.
func NewBrick(w *ecs.World, art Art, x, y, width, height float64, strategy component.CollisionStrategy) (ecs.Entity, error) {
	if strategy == nil {
		return 0, fmt.Errorf("brick: nil collision strategy")
	}
	brick := ecs.CreateEntity(w)

	if err := ecs.Add(w, brick, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("brick: add transform: %w", err)
	}
	if err := ecs.Add(w, brick, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Type: component.BodyStatic}); err != nil {
		return 0, fmt.Errorf("brick: add physics body: %w", err)
	}
	if err := ecs.Add(w, brick, component.BrickComponent.Kind(), &component.Brick{Strategy: strategy}); err != nil {
		return 0, fmt.Errorf("brick: add brick: %w", err)
	}
	if err := ecs.Add(w, brick, component.LayerComponent.Kind(), &component.Layer{Index: component.LayerStatic}); err != nil {
		return 0, fmt.Errorf("brick: add layer: %w", err)
	}
	if err := addSprite(w, brick, art.Brick); err != nil {
		return 0, fmt.Errorf("brick: %w", err)
	}

	return brick, nil
}
