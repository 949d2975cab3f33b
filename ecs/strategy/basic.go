package strategy

import (
	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

// Basic destroys the brick and counts it off. Every other strategy runs it
// first.
type Basic struct {
	world  *ecs.World
	bricks *common.Counter
}

func NewBasic(w *ecs.World, bricks *common.Counter) *Basic {
	return &Basic{world: w, bricks: bricks}
}

// OnCollision removes the brick from the static layer. A brick that is
// already gone is left alone, so the counter drops once per brick no matter
// how many strategies run for the hit.
func (b *Basic) OnCollision(c *component.Collision) {
	if b == nil || c == nil {
		return
	}
	brick := ecs.Entity(c.Brick)
	if !ecs.Has(b.world, brick, component.BrickComponent.Kind()) {
		return
	}
	layer, ok := ecs.Get(b.world, brick, component.LayerComponent.Kind())
	if !ok || layer.Index != component.LayerStatic {
		return
	}
	if ecs.DestroyEntity(b.world, brick) {
		b.bricks.Decrement()
	}
}

// Bricks returns the counter Basic decrements.
func (b *Basic) Bricks() *common.Counter {
	if b == nil {
		return nil
	}
	return b.bricks
}
