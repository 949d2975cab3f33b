package main

import (
	"fmt"

	"github.com/milk9111/bricker/assets"
	"github.com/milk9111/bricker/ecs/entity"
	"github.com/milk9111/bricker/prefabs"
)

func loadArt(spec *prefabs.GameSpec, muted bool) (entity.Art, error) {
	var art entity.Art
	var err error
	if art.Background, err = assets.LoadImage(spec.Images.Background); err != nil {
		return art, fmt.Errorf("art: background: %w", err)
	}
	if art.Ball, err = assets.LoadImage(spec.Images.Ball); err != nil {
		return art, fmt.Errorf("art: ball: %w", err)
	}
	if art.Paddle, err = assets.LoadImage(spec.Images.Paddle); err != nil {
		return art, fmt.Errorf("art: paddle: %w", err)
	}
	if art.Brick, err = assets.LoadImage(spec.Images.Brick); err != nil {
		return art, fmt.Errorf("art: brick: %w", err)
	}
	if art.Heart, err = assets.LoadImage(spec.Images.Heart); err != nil {
		return art, fmt.Errorf("art: heart: %w", err)
	}
	if art.Puck, err = assets.LoadImage(spec.Images.Puck); err != nil {
		return art, fmt.Errorf("art: puck: %w", err)
	}

	art.Volume = spec.Sounds.Volume
	if muted || spec.Sounds.Collision == "" {
		return art, nil
	}
	if art.Collision, err = assets.LoadAudioPlayer(spec.Sounds.Collision); err != nil {
		return art, fmt.Errorf("art: collision sound: %w", err)
	}
	return art, nil
}
