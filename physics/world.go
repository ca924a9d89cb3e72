package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
)

const defaultIterations = 20

// World is a Chipmunk2D space with y pointing up. It is stepped once per
// game update with a fixed dt.
type World struct {
	space      *cp.Space
	dt         float64
	bodies     []*Body
	categories map[string]cp.CollisionType
	log        logrus.FieldLogger
}

// NewWorld creates a space with the given gravity and per-second damping
// (1.0 keeps all velocity). dt is the duration of one Step.
func NewWorld(gravity cp.Vector, damping, dt float64, log logrus.FieldLogger) *World {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(gravity)
	space.SetDamping(damping)
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &World{
		space:      space,
		dt:         dt,
		categories: make(map[string]cp.CollisionType),
		log:        log,
	}
}

func (w *World) SetGravity(gravity cp.Vector) {
	if w == nil {
		return
	}
	w.space.SetGravity(gravity)
}

// SetDamping sets the per-second velocity retention of the space.
func (w *World) SetDamping(damping float64) {
	if w == nil {
		return
	}
	w.space.SetDamping(damping)
}

func (w *World) Gravity() cp.Vector {
	if w == nil {
		return cp.Vector{}
	}
	return w.space.Gravity()
}

func (w *World) collisionType(category string) cp.CollisionType {
	if category == "" {
		return 0
	}
	if ct, ok := w.categories[category]; ok {
		return ct
	}
	ct := cp.CollisionType(len(w.categories) + 1)
	w.categories[category] = ct
	return ct
}

// AddBody registers a box body centred at pos.
func (w *World) AddBody(pos cp.Vector, p BodyParams) *Body {
	if w == nil {
		return nil
	}
	if p.Width <= 0 {
		p.Width = 1
	}
	if p.Height <= 0 {
		p.Height = 1
	}

	b := &Body{params: p}
	if p.Static {
		bb := cp.BB{
			L: pos.X - p.Width/2,
			B: pos.Y - p.Height/2,
			R: pos.X + p.Width/2,
			T: pos.Y + p.Height/2,
		}
		shape := cp.NewBox2(w.space.StaticBody, bb, 0)
		shape.SetFriction(p.Friction)
		shape.SetCollisionType(w.collisionType(p.Category))
		w.space.AddShape(shape)

		b.body = w.space.StaticBody
		b.shape = shape
	} else {
		mass := p.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := p.Moment
		if moment <= 0 {
			moment = cp.MomentForBox(mass, p.Width, p.Height)
		}

		body := cp.NewBody(mass, moment)
		body.SetPosition(pos)
		body.SetVelocityUpdateFunc(b.limitVelocity)

		shape := cp.NewBox(body, p.Width, p.Height, 0)
		shape.SetFriction(p.Friction)
		shape.SetCollisionType(w.collisionType(p.Category))

		w.space.AddBody(body)
		w.space.AddShape(shape)

		b.body = body
		b.shape = shape
		b.lastPos = pos
	}

	w.bodies = append(w.bodies, b)
	w.log.WithFields(logrus.Fields{
		"category": p.Category,
		"static":   p.Static,
		"x":        pos.X,
		"y":        pos.Y,
		"w":        p.Width,
		"h":        p.Height,
	}).Debug("physics: body added")
	return b
}

// Step advances the simulation by one dt and then notifies every body that
// moved during the step.
func (w *World) Step() {
	if w == nil {
		return
	}
	w.space.Step(w.dt)

	for _, b := range w.bodies {
		if b.params.Static {
			continue
		}
		pos := b.body.Position()
		angle := b.body.Angle()
		if pos.Equal(b.lastPos) && angle == b.lastAngle {
			continue
		}
		dx := pos.X - b.lastPos.X
		dy := pos.Y - b.lastPos.Y
		dAngle := angle - b.lastAngle
		b.lastPos = pos
		b.lastAngle = angle

		for _, fn := range b.moved {
			fn(w, dx, dy, dAngle)
		}
	}
}

// IsOnGround reports whether any contact of b pushes it upwards, i.e. b is
// resting on something.
func (w *World) IsOnGround(b *Body) bool {
	if w == nil || b == nil || b.params.Static {
		return false
	}
	best := 0.0
	grounded := false
	b.body.EachArbiter(func(arb *cp.Arbiter) {
		n := arb.Normal().Neg()
		if n.Y > best {
			best = n.Y
			grounded = true
		}
	})
	return grounded
}

// ApplyForce adds a continuous force at the body's centre for the next step.
func (w *World) ApplyForce(b *Body, force cp.Vector) {
	if b == nil || b.params.Static {
		return
	}
	b.body.ApplyForceAtLocalPoint(force, cp.Vector{})
}

// ApplyImpulse changes the body's velocity instantly.
func (w *World) ApplyImpulse(b *Body, impulse cp.Vector) {
	if b == nil || b.params.Static {
		return
	}
	b.body.ApplyImpulseAtLocalPoint(impulse, cp.Vector{})
}

// SetMass changes the mass of a dynamic body. Non-positive masses are
// ignored.
func (w *World) SetMass(b *Body, mass float64) {
	if b == nil || b.params.Static || mass <= 0 {
		return
	}
	b.body.SetMass(mass)
	b.params.Mass = mass
}

func (w *World) SetFriction(b *Body, friction float64) {
	if b == nil || b.shape == nil {
		return
	}
	b.shape.SetFriction(friction)
}
