package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

func addSprite(w *ecs.World, e ecs.Entity, image *ebiten.Image) error {
	if image == nil {
		return nil
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: image}); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	return nil
}
