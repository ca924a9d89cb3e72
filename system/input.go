package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/adventure/scene"
)

// JumpSound is the audio clip fired on a successful jump.
const JumpSound = "jump"

// KeyEvents reports the key transitions of the current frame.
type KeyEvents interface {
	Pressed() []ebiten.Key
	Released() []ebiten.Key
}

type ebitenKeys struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

func (k *ebitenKeys) Pressed() []ebiten.Key {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	return k.pressed
}

func (k *ebitenKeys) Released() []ebiten.Key {
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	return k.released
}

type InputSystem struct {
	keys KeyEvents
}

// NewInputSystem reads keys from keys, or from Ebitengine when keys is nil.
func NewInputSystem(keys KeyEvents) *InputSystem {
	if keys == nil {
		keys = &ebitenKeys{}
	}
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(s *scene.Scene) {
	if s == nil {
		return
	}
	for _, k := range i.keys.Pressed() {
		KeyDown(s, k)
	}
	for _, k := range i.keys.Released() {
		KeyUp(s, k)
	}
}

// KeyDown handles a key press. Up jumps, but only from the ground.
func KeyDown(s *scene.Scene, key ebiten.Key) {
	if s == nil || s.Input == nil {
		return
	}
	switch key {
	case ebiten.KeyArrowLeft:
		s.Input.Left = true
	case ebiten.KeyArrowRight:
		s.Input.Right = true
	case ebiten.KeyArrowUp:
		s.Input.Jump = true
		Jump(s)
	}
}

func KeyUp(s *scene.Scene, key ebiten.Key) {
	if s == nil || s.Input == nil {
		return
	}
	switch key {
	case ebiten.KeyArrowLeft:
		s.Input.Left = false
	case ebiten.KeyArrowRight:
		s.Input.Right = false
	case ebiten.KeyArrowUp:
		s.Input.Jump = false
	}
}

// Jump applies one upward impulse and cues the jump sound when the player is
// standing on something. It reports whether the jump happened.
func Jump(s *scene.Scene) bool {
	if s == nil || s.Physics == nil || s.Player == nil {
		return false
	}
	if !s.Physics.IsOnGround(s.Player.Body) {
		return false
	}
	s.Physics.ApplyImpulse(s.Player.Body, cp.Vector{Y: s.Tuning.JumpImpulse})
	if !s.Player.Audio.Request(JumpSound) {
		s.Log.WithField("clip", JumpSound).Debug("input: jump sound missing")
	}
	return true
}
