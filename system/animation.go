package system

import (
	"math"

	"github.com/milk9111/adventure/common"
	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/physics"
	"github.com/milk9111/adventure/scene"
)

// AnimatePlayer updates facing and texture state from the movement of one
// physics step. It reports whether a new texture was selected; when it
// returns false the previous texture stays.
func AnimatePlayer(p *component.Player, t component.Tuning, dx, dy float64, onGround bool) bool {
	if p == nil {
		return false
	}
	dz := t.DeadZone

	if dx < -dz && p.Facing == component.FacingRight {
		p.Facing = component.FacingLeft
	} else if dx > dz && p.Facing == component.FacingLeft {
		p.Facing = component.FacingRight
	}

	p.WalkOdometer += dx

	if !onGround {
		if dy > dz {
			p.Texture = component.Texture{Kind: component.TextureJump, Facing: p.Facing}
			return true
		}
		if dy < -dz {
			p.Texture = component.Texture{Kind: component.TextureFall, Facing: p.Facing}
			return true
		}
		// apex: fall through to the ground logic
	}

	if math.Abs(dx) <= dz {
		p.Texture = component.Texture{Kind: component.TextureIdle, Facing: p.Facing}
		return true
	}

	if math.Abs(p.WalkOdometer) > t.DistanceToChangeTexture {
		p.WalkOdometer = 0
		p.WalkFrame = common.Wrap(p.WalkFrame+1, component.WalkFrames)
		p.Texture = component.Texture{Kind: component.TextureWalk, Frame: p.WalkFrame, Facing: p.Facing}
		return true
	}
	return false
}

// AttachAnimation drives the player's animation from its body's moved
// callback, so it runs once per physics step that moves the player.
func AttachAnimation(s *scene.Scene) {
	if s == nil || s.Player == nil || s.Player.Body == nil {
		return
	}
	var m physics.Movable = s.Player.Body
	m.OnMoved(func(_ *physics.World, dx, dy, _ float64) {
		onGround := s.Physics != nil && s.Physics.IsOnGround(s.Player.Body)
		if AnimatePlayer(s.Player.State, s.Tuning, dx, dy, onGround) {
			s.Player.SyncTexture()
		}
	})
}
