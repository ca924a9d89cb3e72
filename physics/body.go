package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// MomentInfinite gives a body infinite rotational inertia so it never spins.
const MomentInfinite = cp.INFINITY

// Collision categories used by the game.
const (
	CategoryPlayer = "player"
	CategoryWall   = "wall"
)

// BodyParams describes a body at registration time. Width and Height size the
// box collider. A zero Moment uses the moment of a solid box of the given
// mass; zero max velocities leave that axis unclamped.
type BodyParams struct {
	Width                 float64
	Height                float64
	Friction              float64
	Mass                  float64
	Moment                float64
	MaxHorizontalVelocity float64
	MaxVerticalVelocity   float64
	Category              string
	Static                bool
}

// MovedFunc is invoked after a physics step in which a body changed position
// or angle, with the deltas of that step.
type MovedFunc func(w *World, dx, dy, dAngle float64)

// Movable is the capability the game needs from a simulated object: read its
// position and be told when a step moved it.
type Movable interface {
	Position() cp.Vector
	OnMoved(fn MovedFunc)
}

// Body is a rigid body registered with a World.
type Body struct {
	body   *cp.Body
	shape  *cp.Shape
	params BodyParams

	lastPos   cp.Vector
	lastAngle float64
	moved     []MovedFunc
}

// Position returns the centre of the body. Static bodies report the centre of
// their collider.
func (b *Body) Position() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	if b.params.Static {
		if b.shape == nil {
			return cp.Vector{}
		}
		bb := b.shape.BB()
		return cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
	}
	return b.body.Position()
}

func (b *Body) Angle() float64 {
	if b == nil || b.params.Static {
		return 0
	}
	return b.body.Angle()
}

func (b *Body) Velocity() cp.Vector {
	if b == nil || b.params.Static {
		return cp.Vector{}
	}
	return b.body.Velocity()
}

// Friction returns the current friction coefficient of the body's collider.
func (b *Body) Friction() float64 {
	if b == nil || b.shape == nil {
		return 0
	}
	return b.shape.Friction()
}

func (b *Body) Params() BodyParams {
	if b == nil {
		return BodyParams{}
	}
	return b.params
}

// OnMoved registers fn to run after every step that moves the body.
// Callbacks run in registration order.
func (b *Body) OnMoved(fn MovedFunc) {
	if b == nil || fn == nil {
		return
	}
	b.moved = append(b.moved, fn)
}

// SetMaxVelocity changes the per-axis velocity caps of a dynamic body.
func (b *Body) SetMaxVelocity(horizontal, vertical float64) {
	if b == nil || b.params.Static {
		return
	}
	b.params.MaxHorizontalVelocity = horizontal
	b.params.MaxVerticalVelocity = vertical
}

// limitVelocity integrates velocity normally, then clamps each axis to the
// body's caps.
func (b *Body) limitVelocity(body *cp.Body, gravity cp.Vector, damping, dt float64) {
	cp.BodyUpdateVelocity(body, gravity, damping, dt)

	v := body.Velocity()
	clamped := false
	if maxH := b.params.MaxHorizontalVelocity; maxH > 0 && math.Abs(v.X) > maxH {
		v.X = math.Copysign(maxH, v.X)
		clamped = true
	}
	if maxV := b.params.MaxVerticalVelocity; maxV > 0 && math.Abs(v.Y) > maxV {
		v.Y = math.Copysign(maxV, v.Y)
		clamped = true
	}
	if clamped {
		body.SetVelocityVector(v)
	}
}
