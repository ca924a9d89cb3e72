package system

import "github.com/milk9111/adventure/scene"

// PhysicsSystem advances the simulation one fixed step per update. Moved
// callbacks, including the player's animation, run inside the step.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(s *scene.Scene) {
	if s == nil || s.Physics == nil {
		return
	}
	s.Physics.Step()
}
