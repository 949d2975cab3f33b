package strategy

import (
	"go.uber.org/zap"

	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/ecs/entity"
)

// AddLife drops a heart from the destroyed brick. The life is only granted
// if the base paddle catches it.
type AddLife struct {
	basic *Basic
	deps  *Deps
}

func NewAddLife(basic *Basic, deps *Deps) *AddLife {
	return &AddLife{basic: basic, deps: deps}
}

func (s *AddLife) OnCollision(c *component.Collision) {
	if s == nil || c == nil {
		return
	}
	s.basic.OnCollision(c)

	if _, err := entity.NewFallenHeart(s.deps.World, s.deps.Spec, s.deps.Art, s.deps.Lives, c.CenterX, c.CenterY); err != nil {
		zap.L().Error("spawn fallen heart", zap.Error(err))
		return
	}
	zap.L().Debug("fallen heart spawned", zap.Float64("x", c.CenterX), zap.Float64("y", c.CenterY))
}
