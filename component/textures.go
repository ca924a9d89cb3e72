package component

import "github.com/hajimehoshi/ebiten/v2"

// PlayerTextures holds the right-facing textures of the player. Left-facing
// variants are the same images mirrored at draw time.
type PlayerTextures struct {
	Idle *ebiten.Image
	Jump *ebiten.Image
	Fall *ebiten.Image
	Walk [WalkFrames]*ebiten.Image
}

// Image returns the texture image for t and whether it should be mirrored.
func (pt *PlayerTextures) Image(t Texture) (*ebiten.Image, bool) {
	if pt == nil {
		return nil, false
	}
	flip := t.Facing == FacingLeft
	switch t.Kind {
	case TextureJump:
		return pt.Jump, flip
	case TextureFall:
		return pt.Fall, flip
	case TextureWalk:
		if t.Frame < 0 || t.Frame >= WalkFrames {
			return pt.Idle, flip
		}
		return pt.Walk[t.Frame], flip
	default:
		return pt.Idle, flip
	}
}
