package system

import (
	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/scene"
)

// AudioSystem starts the clips requested during the frame. Each request
// restarts its clip from the beginning; a clip that cannot rewind plays on
// from where it is.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(s *scene.Scene) {
	if s == nil || s.Player == nil || s.Player.Audio == nil {
		return
	}
	audioComp := s.Player.Audio

	count := len(audioComp.Play)
	if len(audioComp.Players) < count {
		count = len(audioComp.Players)
	}

	for i := 0; i < count; i++ {
		if !audioComp.Play[i] {
			continue
		}

		player := audioComp.Players[i]
		if player != nil {
			if i < len(audioComp.Volume) {
				player.SetVolume(audioComp.Volume[i])
			}
			if err := player.Rewind(); err != nil {
				s.Log.WithError(err).WithField("clip", clipName(audioComp, i)).Warn("audio: rewind failed")
			}
			player.Play()
		}

		audioComp.Play[i] = false
	}

}

func clipName(a *component.Audio, i int) string {
	if i < len(a.Names) {
		return a.Names[i]
	}
	return ""
}
