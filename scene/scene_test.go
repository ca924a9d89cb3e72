package scene

import (
	"io"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/entity"
	"github.com/milk9111/adventure/physics"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func TestNewWithoutMap(t *testing.T) {
	player := &entity.Player{State: &component.Player{}, Sprite: &component.Sprite{}}
	s := New(component.DefaultTuning(), nil, nil, player, nil, quietLogger())

	if s.Camera == nil || s.Input == nil {
		t.Fatalf("camera and input must be set")
	}
	lists := s.Lists()
	if len(lists) != 6 {
		t.Fatalf("expected 6 draw lists, got %d", len(lists))
	}
	if lists[1] != s.Bullets || s.Bullets.Len() != 0 {
		t.Fatalf("bullets list must be second and empty")
	}
	if lists[5] != s.Players || s.Players.Len() != 1 {
		t.Fatalf("player list must be last and hold the player")
	}
}

func TestApplyTuning(t *testing.T) {
	world := physics.NewWorld(cp.Vector{Y: -1500}, 1, 1.0/60.0, quietLogger())
	wall := world.AddBody(cp.Vector{Y: -10}, physics.BodyParams{Width: 100, Height: 20, Friction: 0.7, Static: true})
	body := world.AddBody(cp.Vector{}, physics.BodyParams{Width: 10, Height: 10, Mass: 2, Friction: 1, MaxHorizontalVelocity: 350})
	player := &entity.Player{State: &component.Player{}, Sprite: &component.Sprite{}, Body: body}
	s := New(component.DefaultTuning(), world, nil, player, nil, quietLogger())
	s.World = world
	s.WallBodies = []*physics.Body{wall}

	tun := component.DefaultTuning()
	tun.Gravity = 900
	tun.MaxHorizontalSpeed = 100
	tun.PlayerMass = 4
	tun.PlayerFriction = 0.5
	tun.WallFriction = 0.2
	s.ApplyTuning(tun)

	if g := world.Gravity(); g.Y != -900 {
		t.Fatalf("gravity not applied: %v", g)
	}
	if body.Params().MaxHorizontalVelocity != 100 {
		t.Fatalf("velocity cap not applied: %+v", body.Params())
	}
	if body.Params().Mass != 4 {
		t.Fatalf("mass not applied: %+v", body.Params())
	}
	if body.Friction() != 0.5 {
		t.Fatalf("player friction not applied: %v", body.Friction())
	}
	if wall.Friction() != 0.2 {
		t.Fatalf("wall friction not applied: %v", wall.Friction())
	}
	if s.Tuning.Gravity != 900 {
		t.Fatalf("tuning not stored")
	}

	// an impulse now moves the heavier body half as fast
	world.ApplyImpulse(body, cp.Vector{Y: 1800})
	if v := body.Velocity().Y; v != 450 {
		t.Fatalf("expected vy 450 with mass 4, got %v", v)
	}
}

func TestLoadNilSettings(t *testing.T) {
	if _, err := Load(nil, quietLogger()); err == nil {
		t.Fatalf("expected error")
	}
}
