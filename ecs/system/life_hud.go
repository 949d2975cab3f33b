package system

import (
	"image/color"
	"strconv"

	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

type LifeColors struct {
	Low  color.Color
	Mid  color.Color
	High color.Color
}

// LifeHUDSystem mirrors the lives counter into the heart icons and the
// numeric counter.
type LifeHUDSystem struct {
	lives    *common.Counter
	maxShown int
	colors   LifeColors
}

func NewLifeHUDSystem(lives *common.Counter, maxShown int, colors LifeColors) *LifeHUDSystem {
	return &LifeHUDSystem{lives: lives, maxShown: maxShown, colors: colors}
}

func (s *LifeHUDSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	lives := s.lives.Value()

	ecs.ForEach(w, component.LifeSlotComponent.Kind(), func(e ecs.Entity, slot *component.LifeSlot) {
		hidden := ecs.Has(w, e, component.HiddenComponent.Kind())
		if slot.Slot < lives {
			if hidden {
				ecs.Remove(w, e, component.HiddenComponent.Kind())
			}
			return
		}
		if !hidden {
			_ = ecs.Add(w, e, component.HiddenComponent.Kind(), &component.Hidden{})
		}
	})

	// The numeric counter stops following once lives exceed what the icons
	// can show.
	if lives > s.maxShown {
		return
	}
	ecs.ForEach2(w, component.LifeTextComponent.Kind(), component.TextComponent.Kind(), func(e ecs.Entity, marker *component.LifeText, text *component.Text) {
		if marker.Shown == lives {
			return
		}
		marker.Shown = lives
		text.Value = strconv.Itoa(lives)
		text.Color = s.colorFor(lives)
		_ = ecs.Add(w, e, component.LifeTextComponent.Kind(), marker)
		_ = ecs.Add(w, e, component.TextComponent.Kind(), text)
	})
}

func (s *LifeHUDSystem) colorFor(lives int) color.Color {
	switch {
	case lives <= 1:
		return s.colors.Low
	case lives == 2:
		return s.colors.Mid
	default:
		return s.colors.High
	}
}
