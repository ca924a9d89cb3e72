package system

import (
	"io"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/entity"
	"github.com/milk9111/adventure/physics"
	"github.com/milk9111/adventure/scene"
)

type fakePhysics struct {
	grounded     bool
	steps        int
	forces       []cp.Vector
	impulses     []cp.Vector
	friction     float64
	frictionSets int
}

func (f *fakePhysics) Step()                         { f.steps++ }
func (f *fakePhysics) IsOnGround(*physics.Body) bool { return f.grounded }
func (f *fakePhysics) ApplyForce(_ *physics.Body, v cp.Vector) {
	f.forces = append(f.forces, v)
}
func (f *fakePhysics) ApplyImpulse(_ *physics.Body, v cp.Vector) {
	f.impulses = append(f.impulses, v)
}
func (f *fakePhysics) SetFriction(_ *physics.Body, v float64) {
	f.friction = v
	f.frictionSets++
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func newTestPlayer() *entity.Player {
	return &entity.Player{
		State:  &component.Player{},
		Sprite: &component.Sprite{},
		Body:   &physics.Body{},
		Audio: &component.Audio{
			Names:   []string{JumpSound},
			Players: []component.Clip{nil},
			Volume:  []float64{1},
			Play:    []bool{false},
		},
	}
}

func newTestScene(pw scene.PhysicsWorld) *scene.Scene {
	cam := &component.Camera{ViewportWidth: 1200, ViewportHeight: 750}
	return scene.New(component.DefaultTuning(), pw, nil, newTestPlayer(), cam, quietLogger())
}
