package level

import (
	"github.com/google/wire"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/entity"
	"github.com/milk9111/bricker/ecs/strategy"
	"github.com/milk9111/bricker/prefabs"
)

// BricksSet provides a BricksController whose strategies share one Basic and
// the session counters.
var BricksSet = wire.NewSet(
	NewBrickCount,
	ProvideDeps,
	ProvideBasic,
	strategy.NewFactory,
	wire.Bind(new(Chooser), new(*strategy.Factory)),
	NewBricksController,
)

func ProvideDeps(w *ecs.World, spec *prefabs.GameSpec, art entity.Art, session *Session, src strategy.Source) *strategy.Deps {
	return &strategy.Deps{
		World:   w,
		Spec:    spec,
		Art:     art,
		Lives:   session.Lives,
		Paddles: session.Paddles,
		Rand:    src,
	}
}

func ProvideBasic(w *ecs.World, count BrickCount) *strategy.Basic {
	return strategy.NewBasic(w, count.Counter)
}
