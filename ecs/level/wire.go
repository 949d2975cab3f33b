//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package level

import (
	"github.com/google/wire"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/entity"
	"github.com/milk9111/bricker/ecs/strategy"
	"github.com/milk9111/bricker/prefabs"
)

func InitializeBricks(w *ecs.World, spec *prefabs.GameSpec, art entity.Art, session *Session, src strategy.Source, grid Grid) (*BricksController, error) {
	wire.Build(BricksSet)
	return nil, nil
}
