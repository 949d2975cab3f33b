package strategy

import (
	"go.uber.org/zap"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
	"github.com/milk9111/bricker/ecs/entity"
)

// Camera zooms out around the main ball when the main ball itself broke the
// brick and no camera is active yet.
type Camera struct {
	basic *Basic
	deps  *Deps
}

func NewCamera(basic *Basic, deps *Deps) *Camera {
	return &Camera{basic: basic, deps: deps}
}

func (s *Camera) OnCollision(c *component.Collision) {
	if s == nil || c == nil {
		return
	}
	s.basic.OnCollision(c)

	if c.OtherTag != component.TagMainBall {
		return
	}
	if _, ok := ecs.First(s.deps.World, component.CameraComponent.Kind()); ok {
		return
	}
	if _, err := entity.NewCamera(s.deps.World, ecs.Entity(c.Other), s.deps.Spec.Camera.Zoom); err != nil {
		zap.L().Error("create follow camera", zap.Error(err))
		return
	}
	zap.L().Debug("follow camera engaged", zap.Float64("zoom", s.deps.Spec.Camera.Zoom))
}
