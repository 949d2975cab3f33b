package entity

import (
	"fmt"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/prefabs"
)

// NewWalls creates the left, right and top walls. The bottom stays open.
func NewWalls(w *ecs.World, spec *prefabs.GameSpec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("walls: nil game spec")
	}
	width, height, thick := spec.Window.Width, spec.Window.Height, spec.Walls.Width
	rects := []component.Transform{
		{X: 0, Y: 0, Width: thick, Height: height},
		{X: width - thick, Y: 0, Width: thick, Height: height},
		{X: 0, Y: 0, Width: width, Height: thick},
	}

	walls := make([]ecs.Entity, 0, len(rects))
	for i := range rects {
		wall := ecs.CreateEntity(w)
		if err := ecs.Add(w, wall, component.TransformComponent.Kind(), &rects[i]); err != nil {
			return nil, fmt.Errorf("walls: add transform: %w", err)
		}
		if err := ecs.Add(w, wall, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Type: component.BodyStatic}); err != nil {
			return nil, fmt.Errorf("walls: add physics body: %w", err)
		}
		if err := ecs.Add(w, wall, component.LayerComponent.Kind(), &component.Layer{Index: component.LayerStatic}); err != nil {
			return nil, fmt.Errorf("walls: add layer: %w", err)
		}
		walls = append(walls, wall)
	}
	return walls, nil
}

// NewBackground stretches the background image over the window in screen
// space.
func NewBackground(w *ecs.World, spec *prefabs.GameSpec, art Art) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("background: nil game spec")
	}
	bg := ecs.CreateEntity(w)
	if err := ecs.Add(w, bg, component.TransformComponent.Kind(), &component.Transform{Width: spec.Window.Width, Height: spec.Window.Height}); err != nil {
		return 0, fmt.Errorf("background: add transform: %w", err)
	}
	if err := ecs.Add(w, bg, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("background: add screen-space: %w", err)
	}
	if err := ecs.Add(w, bg, component.LayerComponent.Kind(), &component.Layer{Index: component.LayerBackground}); err != nil {
		return 0, fmt.Errorf("background: add layer: %w", err)
	}
	if err := addSprite(w, bg, art.Background); err != nil {
		return 0, fmt.Errorf("background: %w", err)
	}
	return bg, nil
}
