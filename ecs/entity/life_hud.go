package entity

import (
	"fmt"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/prefabs"
)

// NewLifeHUD creates the graphic life counter (one icon per slot along the
// bottom-left) and the numeric counter at the bottom-right.
func NewLifeHUD(w *ecs.World, spec *prefabs.GameSpec, art Art) error {
	if spec == nil {
		return fmt.Errorf("life hud: nil game spec")
	}
	lives := spec.Lives
	y := spec.Window.Height - lives.BottomOffset

	x := lives.IconGap
	for i := 0; i < lives.MaxShown; i++ {
		icon := ecs.CreateEntity(w)
		if err := ecs.Add(w, icon, component.LifeSlotComponent.Kind(), &component.LifeSlot{Slot: i}); err != nil {
			return fmt.Errorf("life hud: add slot: %w", err)
		}
		if err := ecs.Add(w, icon, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Width: lives.IconSize, Height: lives.IconSize}); err != nil {
			return fmt.Errorf("life hud: add icon transform: %w", err)
		}
		if err := ecs.Add(w, icon, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
			return fmt.Errorf("life hud: add icon screen-space: %w", err)
		}
		if err := ecs.Add(w, icon, component.LayerComponent.Kind(), &component.Layer{Index: component.LayerUI}); err != nil {
			return fmt.Errorf("life hud: add icon layer: %w", err)
		}
		if err := addSprite(w, icon, art.Heart); err != nil {
			return fmt.Errorf("life hud: %w", err)
		}
		x += lives.IconSize + lives.IconGap
	}

	text := ecs.CreateEntity(w)
	if err := ecs.Add(w, text, component.LifeTextComponent.Kind(), &component.LifeText{Shown: -1}); err != nil {
		return fmt.Errorf("life hud: add text marker: %w", err)
	}
	if err := ecs.Add(w, text, component.TextComponent.Kind(), &component.Text{}); err != nil {
		return fmt.Errorf("life hud: add text: %w", err)
	}
	if err := ecs.Add(w, text, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.Window.Width - lives.BottomOffset,
		Y:      y,
		Width:  lives.TextSize,
		Height: lives.TextSize,
	}); err != nil {
		return fmt.Errorf("life hud: add text transform: %w", err)
	}
	if err := ecs.Add(w, text, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return fmt.Errorf("life hud: add text screen-space: %w", err)
	}
	if err := ecs.Add(w, text, component.LayerComponent.Kind(), &component.Layer{Index: component.LayerUI}); err != nil {
		return fmt.Errorf("life hud: add text layer: %w", err)
	}
	return nil
}
