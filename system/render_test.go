package system

import (
	"math"
	"testing"

	"github.com/milk9111/adventure/component"
)

func TestWorldToScreen(t *testing.T) {
	cam := &component.Camera{ViewportWidth: 1200, ViewportHeight: 750, X: 400, Y: 625}
	tests := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{name: "view_bottom_left", x: 400, y: 625, sx: 0, sy: 750},
		{name: "view_top_left", x: 400, y: 1375, sx: 0, sy: 0},
		{name: "view_centre", x: 1000, y: 1000, sx: 600, sy: 375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.x, tt.y, cam)
			if sx != tt.sx || sy != tt.sy {
				t.Fatalf("got (%v,%v), want (%v,%v)", sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestSpriteGeoM(t *testing.T) {
	cam := &component.Camera{ViewportHeight: 100}
	sprite := &component.Sprite{X: 10, Y: 20, Scale: 0.5}

	g := SpriteGeoM(sprite, cam)
	x, y := g.Apply(2, 0)
	if x != 11 || y != 80 {
		t.Fatalf("got (%v,%v)", x, y)
	}

	sprite.FacingLeft = true
	g = SpriteGeoM(sprite, cam)
	x, _ = g.Apply(2, 0)
	if x != 9 {
		t.Fatalf("expected mirrored x 9, got %v", x)
	}

	sprite.FacingLeft = false
	sprite.Angle = math.Pi / 2
	g = SpriteGeoM(sprite, cam)
	x, y = g.Apply(2, 0)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-79) > 1e-9 {
		t.Fatalf("expected counter-clockwise rotation, got (%v,%v)", x, y)
	}
}

func TestSceneListOrder(t *testing.T) {
	s := newTestScene(&fakePhysics{})
	s.Walls = component.NewSpriteList("Platforms")
	s.Items = component.NewSpriteList("Dynamic items")
	s.Background = component.NewSpriteList("Background")
	s.Goal = component.NewSpriteList("Goal")

	want := []string{"Platforms", "Bullets", "Dynamic items", "Background", "Goal", "Player"}
	lists := s.Lists()
	if len(lists) != len(want) {
		t.Fatalf("got %d lists", len(lists))
	}
	for i, l := range lists {
		if l.Name != want[i] {
			t.Fatalf("list %d: got %q, want %q", i, l.Name, want[i])
		}
	}
	if s.Players.Len() != 1 || s.Players.Sprites[0] != s.Player.Sprite {
		t.Fatalf("player sprite missing from its list")
	}
}
