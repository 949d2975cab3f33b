package entity

import (
	"fmt"

	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

// NewInput creates the entity holding the per-frame input snapshot.
func NewInput(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("input: add input component: %w", err)
	}
	return e, nil
}
