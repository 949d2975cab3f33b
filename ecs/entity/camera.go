package entity

import (
	"fmt"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

// NewCamera creates a camera that follows target, showing zoom times the
// window's extent.
func NewCamera(w *ecs.World, target ecs.Entity, zoom float64) (ecs.Entity, error) {
	if !ecs.IsAlive(w, target) {
		return 0, fmt.Errorf("camera: target %v: %w", target, component.ErrEntityNotAlive)
	}
	if zoom <= 0 {
		zoom = 1
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Target: uint64(target),
		Zoom:   zoom,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
