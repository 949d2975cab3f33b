package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is drawn stretched to the entity's Transform size.
type Sprite struct {
	Image *ebiten.Image
}

var SpriteComponent = NewComponent[Sprite]()

// Hidden suppresses drawing without removing the entity.
type Hidden struct{}

var HiddenComponent = NewComponent[Hidden]()
