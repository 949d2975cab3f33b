package system

import (
	"github.com/milk9111/bricker/ecs"
	"github.com/milk9111/bricker/ecs/component"
)

type AudioSystem struct {
	muted bool
}

func NewAudioSystem(muted bool) *AudioSystem {
	return &AudioSystem{muted: muted}
}

// Update starts every queued clip from the beginning and clears the queue.
func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		if !audioComp.Play {
			return
		}
		audioComp.Play = false

		player := audioComp.Player
		if a.muted || player == nil {
			return
		}
		player.SetVolume(audioComp.Volume)
		if err := player.Rewind(); err != nil {
			return
		}
		player.Play()
	})
}
