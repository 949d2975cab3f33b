package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/bricker/common"
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

// CameraSystem retires the follow camera once its target has collided
// Threshold more times than when the camera engaged.
type CameraSystem struct {
	offset    *common.Counter
	threshold int
	open      bool
}

func NewCameraSystem(offset *common.Counter, threshold int) *CameraSystem {
	return &CameraSystem{offset: offset, threshold: threshold}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		cs.open = false
		return
	}
	camera, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())

	collisions := 0
	if bounce, ok := ecs.Get(w, ecs.Entity(camera.Target), component.BounceComponent.Kind()); ok {
		collisions = bounce.Collisions
	}

	if !cs.open {
		cs.open = true
		cs.offset.IncreaseBy(collisions)
	}

	if collisions-cs.offset.Value() >= cs.threshold {
		ecs.DestroyEntity(w, camEntity)
		cs.offset.Reset()
		cs.open = false
		zap.L().Debug("follow camera released", zap.Int("collisions", collisions))
	}
}
