package system

import (
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

// PaddleSystem turns the input snapshot into paddle velocities. A paddle
// refuses to move toward a wall it is already within MinGap pixels of.
type PaddleSystem struct{}

func NewPaddleSystem() *PaddleSystem {
	return &PaddleSystem{}
}

func (s *PaddleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var input component.Input
	if e, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			input = *in
		}
	}

	ecs.ForEach3(w, component.PaddleControlComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, ctrl *component.PaddleControl, transform *component.Transform, vel *component.Velocity) {
		dir := 0.0
		if input.Left && transform.X-1-ctrl.MinGap > ctrl.WallWidth {
			dir--
		}
		if input.Right && transform.X+transform.Width+1+ctrl.MinGap < ctrl.WindowWidth-ctrl.WallWidth {
			dir++
		}
		vel.X = dir * ctrl.Speed
		vel.Y = 0
		_ = ecs.Add(w, e, component.VelocityComponent.Kind(), vel)
	})
}
