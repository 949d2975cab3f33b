package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds one clip. Setting Play queues it for the audio system.
type Audio struct {
	Player *audio.Player
	Volume float64
	Play   bool
}

var AudioComponent = NewComponent[Audio]()
