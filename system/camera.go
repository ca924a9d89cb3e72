package system

import (
	"github.com/milk9111/adventure/common"
	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/scene"
)

// CameraTarget centres the viewport on (x, y), keeping the offset from
// going below zero on either axis. There is no upper bound.
func CameraTarget(x, y, viewportWidth, viewportHeight float64) (float64, float64) {
	return common.ClampMin(x-viewportWidth/2, 0), common.ClampMin(y-viewportHeight/2, 0)
}

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (c *CameraSystem) Update(s *scene.Scene) {
	if s == nil || s.Camera == nil || s.Player == nil || s.Player.Sprite == nil {
		return
	}
	CenterOn(s.Camera, s.Player.Sprite)
}

// CenterOn snaps cam onto the centre of sprite.
func CenterOn(cam *component.Camera, sprite *component.Sprite) {
	cam.X, cam.Y = CameraTarget(sprite.X, sprite.Y, cam.ViewportWidth, cam.ViewportHeight)
}
