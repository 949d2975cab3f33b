package strategy

import (
	"go.uber.org/zap"

	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/ecs/entity"
)

// AddPucks releases two pucks from the brick's center, each aimed by its own
// direction strategy.
type AddPucks struct {
	basic      *Basic
	deps       *Deps
	directions [2]DirectionStrategy
}

func NewAddPucks(basic *Basic, deps *Deps) *AddPucks {
	return &AddPucks{
		basic: basic,
		deps:  deps,
		directions: [2]DirectionStrategy{
			BasicRandom{Rand: deps.Rand},
			CircleUnit{Rand: deps.Rand},
		},
	}
}

func (s *AddPucks) OnCollision(c *component.Collision) {
	if s == nil || c == nil {
		return
	}
	s.basic.OnCollision(c)

	speed := s.deps.Spec.Puck.Speed
	for _, direction := range s.directions {
		velocity := direction.Direction(speed)
		if _, err := entity.NewPuck(s.deps.World, s.deps.Spec, s.deps.Art, c.CenterX, c.CenterY, velocity); err != nil {
			zap.L().Error("spawn puck", zap.Error(err))
			return
		}
	}
	zap.L().Debug("pucks spawned", zap.Float64("x", c.CenterX), zap.Float64("y", c.CenterY))
}
