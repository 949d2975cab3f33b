package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Art is the media entities are built with. Any member may be nil: the entity
// is still built, it just draws or plays nothing.
type Art struct {
	Background *ebiten.Image
	Ball       *ebiten.Image
	Paddle     *ebiten.Image
	Brick      *ebiten.Image
	Heart      *ebiten.Image
	Puck       *ebiten.Image

	Collision *audio.Player
	Volume    float64
}
