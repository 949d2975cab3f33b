package strategy

import (
	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/entity"
	"github.com/milk9111/bricker/prefabs"
)

// Deps is what the special strategies need to spawn entities into a level.
type Deps struct {
	World   *ecs.World
	Spec    *prefabs.GameSpec
	Art     entity.Art
	Lives   *common.Counter
	Paddles *common.Counter
	Rand    Source
}
