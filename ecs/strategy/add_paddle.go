package strategy

import (
	"go.uber.org/zap"

	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/ecs/entity"
)

// AddPaddle adds a temporary paddle in the middle of the window while fewer
// than SpecialPaddle.MaxPaddles paddles (the base one included) are alive.
type AddPaddle struct {
	basic *Basic
	deps  *Deps
}

func NewAddPaddle(basic *Basic, deps *Deps) *AddPaddle {
	return &AddPaddle{basic: basic, deps: deps}
}

func (s *AddPaddle) OnCollision(c *component.Collision) {
	if s == nil || c == nil {
		return
	}
	s.basic.OnCollision(c)

	if s.deps.Paddles.Value() >= s.deps.Spec.SpecialPaddle.MaxPaddles {
		return
	}
	if _, err := entity.NewSpecialPaddle(s.deps.World, s.deps.Spec, s.deps.Art); err != nil {
		zap.L().Error("spawn special paddle", zap.Error(err))
		return
	}
	s.deps.Paddles.Increment()
	zap.L().Debug("special paddle spawned", zap.Int("paddles", s.deps.Paddles.Value()))
}
