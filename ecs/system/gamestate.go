package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/ecs/strategy"
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

type GameStateConfig struct {
	Ball         ecs.Entity
	Bricks       *common.Counter
	Lives        *common.Counter
	WindowWidth  float64
	WindowHeight float64
	BallSpeed    float64
	// Direction re-aims the ball after a lost life.
	Direction strategy.DirectionStrategy
}

// GameStateSystem decides when a round ends. Once an outcome is reached it
// stays until the level is rebuilt.
type GameStateSystem struct {
	cfg     GameStateConfig
	outcome Outcome
}

func NewGameStateSystem(cfg GameStateConfig) *GameStateSystem {
	return &GameStateSystem{cfg: cfg}
}

func (s *GameStateSystem) Outcome() Outcome {
	if s == nil {
		return OutcomeNone
	}
	return s.outcome
}

func (s *GameStateSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.outcome != OutcomeNone {
		return
	}

	outcome := OutcomeNone
	if s.cfg.Bricks.Value() <= 0 || forceWin(w) {
		outcome = OutcomeWin
	}

	if transform, ok := ecs.Get(w, s.cfg.Ball, component.TransformComponent.Kind()); ok {
		if _, cy := transform.Center(); cy > s.cfg.WindowHeight {
			s.cfg.Lives.Decrement()
			zap.L().Info("life lost", zap.Int("lives", s.cfg.Lives.Value()))
			if s.cfg.Lives.Value() <= 0 {
				outcome = OutcomeLose
			} else {
				s.resetBall(w, transform)
			}
		}
	}

	if outcome != OutcomeNone {
		s.outcome = outcome
		zap.L().Info("round over", zap.Stringer("outcome", outcome), zap.Int("bricks", s.cfg.Bricks.Value()))
	}
}

func (s *GameStateSystem) resetBall(w *ecs.World, transform *component.Transform) {
	transform.SetCenter(s.cfg.WindowWidth/2, s.cfg.WindowHeight/2)
	_ = ecs.Add(w, s.cfg.Ball, component.TransformComponent.Kind(), transform)

	if vel, ok := ecs.Get(w, s.cfg.Ball, component.VelocityComponent.Kind()); ok && s.cfg.Direction != nil {
		vel.Set(s.cfg.Direction.Direction(s.cfg.BallSpeed))
		_ = ecs.Add(w, s.cfg.Ball, component.VelocityComponent.Kind(), vel)
	}
}

func forceWin(w *ecs.World) bool {
	e, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return false
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	return ok && input.ForceWin
}
