package system

import (
	"testing"

	"github.com/milk9111/adventure/component"
)

func TestCameraTarget(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		vw, vh float64
		wantX  float64
		wantY  float64
	}{
		{name: "centred", x: 1000, y: 1000, vw: 1200, vh: 750, wantX: 400, wantY: 625},
		{name: "near_origin", x: 96, y: 160, vw: 1200, vh: 750, wantX: 0, wantY: 0},
		{name: "negative_world", x: -500, y: -500, vw: 100, vh: 100, wantX: 0, wantY: 0},
		{name: "no_upper_bound", x: 1e6, y: 1e6, vw: 1200, vh: 750, wantX: 1e6 - 600, wantY: 1e6 - 375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := CameraTarget(tt.x, tt.y, tt.vw, tt.vh)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("got (%v,%v), want (%v,%v)", x, y, tt.wantX, tt.wantY)
			}
			if x < 0 || y < 0 {
				t.Fatalf("negative offset (%v,%v)", x, y)
			}
		})
	}
}

func TestCameraSystemSnapsToPlayer(t *testing.T) {
	s := newTestScene(&fakePhysics{})
	s.Player.Sprite.X, s.Player.Sprite.Y = 1000, 1000
	s.Camera.X, s.Camera.Y = 5, 5

	NewCameraSystem().Update(s)

	if s.Camera.X != 400 || s.Camera.Y != 625 {
		t.Fatalf("got (%v,%v)", s.Camera.X, s.Camera.Y)
	}
	if s.Camera.ViewportWidth != 1200 || s.Camera.ViewportHeight != 750 {
		t.Fatalf("viewport changed: %+v", s.Camera)
	}
}

func TestCenterOnIgnoresOldOffset(t *testing.T) {
	cam := &component.Camera{ViewportWidth: 100, ViewportHeight: 100, X: 999, Y: 999}
	CenterOn(cam, &component.Sprite{X: 200, Y: 60})
	if cam.X != 150 || cam.Y != 10 {
		t.Fatalf("got (%v,%v)", cam.X, cam.Y)
	}
}
