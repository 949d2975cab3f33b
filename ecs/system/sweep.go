package system

import (
	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

type SweepConfig struct {
	WindowHeight float64
	// HeartBuffer is how far above the bottom edge a falling heart is
	// already considered lost.
	HeartBuffer float64
	Paddles     *common.Counter
}

// SweepSystem removes entities whose tag or position says they are done:
// worn-out special paddles, collected or missed hearts and lost pucks.
type SweepSystem struct {
	cfg SweepConfig
}

func NewSweepSystem(cfg SweepConfig) *SweepSystem {
	return &SweepSystem{cfg: cfg}
}

func (s *SweepSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.TagComponent.Kind(), func(e ecs.Entity, tag *component.Tag) {
		switch tag.Name {
		case component.TagSpecialPaddleToRemove:
			if ecs.DestroyEntity(w, e) {
				s.cfg.Paddles.Decrement()
			}
		case component.TagFallenHeartToRemove:
			ecs.DestroyEntity(w, e)
		case component.TagFallenHeart:
			if centerY(w, e) > s.cfg.WindowHeight-s.cfg.HeartBuffer {
				ecs.DestroyEntity(w, e)
			}
		case component.TagPuck:
			if centerY(w, e) > s.cfg.WindowHeight {
				ecs.DestroyEntity(w, e)
			}
		}
	})
}

func centerY(w *ecs.World, e ecs.Entity) float64 {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0
	}
	_, y := transform.Center()
	return y
}
