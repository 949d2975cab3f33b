package level

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/ecs/entity"
	"github.com/milk9111/bricker/ecs/strategy"
	"github.com/milk9111/bricker/prefabs"
)

// Level is one freshly built world: background, walls, ball, base paddle,
// life HUD and the brick grid.
type Level struct {
	World  *ecs.World
	Ball   ecs.Entity
	Paddle ecs.Entity
	Bricks *BricksController
	RunID  string
}

func Build(spec *prefabs.GameSpec, art entity.Art, session *Session, src strategy.Source, grid Grid) (*Level, error) {
	if spec == nil || session == nil || src == nil {
		return nil, fmt.Errorf("level: build: missing spec, session or random source")
	}
	w := ecs.NewWorld()

	if _, err := entity.NewInput(w); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	if _, err := entity.NewBackground(w, spec, art); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	if _, err := entity.NewWalls(w, spec); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	ball, err := entity.NewBall(w, spec, art)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	if vel, ok := ecs.Get(w, ball, component.VelocityComponent.Kind()); ok {
		vel.Set(strategy.BasicRandom{Rand: src}.Direction(spec.Ball.Speed))
	}

	paddle, err := entity.NewPaddle(w, spec, art)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	if err := entity.NewLifeHUD(w, spec, art); err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	bricks, err := InitializeBricks(w, spec, art, session, src, grid)
	if err != nil {
		return nil, err
	}
	if _, err := bricks.Build(); err != nil {
		return nil, err
	}

	lvl := &Level{
		World:  w,
		Ball:   ball,
		Paddle: paddle,
		Bricks: bricks,
		RunID:  uuid.NewString(),
	}

	kinds := bricks.Kinds()
	fields := []zap.Field{
		zap.String("run", lvl.RunID),
		zap.Stringer("grid", grid),
		zap.Int("bricks", bricks.Counter().Value()),
		zap.Int("lives", session.Lives.Value()),
	}
	for k := strategy.KindPucks; k <= strategy.KindBasic; k++ {
		fields = append(fields, zap.Int(k.String(), kinds[k]))
	}
	zap.L().Info("level built", fields...)

	return lvl, nil
}
