package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/scene"
)

// MovingFriction and StoppedFriction are the player's friction while a
// direction is held and while it is not.
const (
	MovingFriction  = 0.0
	StoppedFriction = 1.0
)

// SelectForce picks the horizontal force and friction for one frame of
// input. apply is false when no force should be applied; holding both
// directions counts as holding neither.
func SelectForce(in component.Input, onGround bool, t component.Tuning) (force cp.Vector, friction float64, apply bool) {
	magnitude := t.AirForce
	if onGround {
		magnitude = t.GroundForce
	}
	switch {
	case in.Left && !in.Right:
		return cp.Vector{X: -magnitude}, MovingFriction, true
	case in.Right && !in.Left:
		return cp.Vector{X: magnitude}, MovingFriction, true
	default:
		return cp.Vector{}, StoppedFriction, false
	}
}

type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(s *scene.Scene) {
	if s == nil || s.Physics == nil || s.Player == nil || s.Input == nil {
		return
	}
	body := s.Player.Body
	force, friction, apply := SelectForce(*s.Input, s.Physics.IsOnGround(body), s.Tuning)
	if apply {
		s.Physics.ApplyForce(body, force)
	}
	s.Physics.SetFriction(body, friction)
}
