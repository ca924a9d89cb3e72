package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/scene"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw clears the screen and draws every sprite list of the scene, in
// order, through the camera.
func (r *RenderSystem) Draw(s *scene.Scene, screen *ebiten.Image) {
	if s == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Skyblue)

	cam := s.Camera
	if cam == nil {
		cam = &component.Camera{ViewportHeight: float64(screen.Bounds().Dy())}
	}
	for _, list := range s.Lists() {
		if list == nil {
			continue
		}
		for _, sprite := range list.Sprites {
			if sprite == nil || sprite.Image == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM = SpriteGeoM(sprite, cam)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(sprite.Image, op)
		}
	}
}

// SpriteGeoM places sprite on screen. World y points up and the camera
// offset is the bottom-left corner of the view, so y is flipped against the
// viewport height.
func SpriteGeoM(sprite *component.Sprite, cam *component.Camera) ebiten.GeoM {
	var g ebiten.GeoM
	if sprite.Image != nil {
		b := sprite.Image.Bounds()
		g.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	}
	if sprite.FacingLeft {
		g.Scale(-1, 1)
	}
	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}
	g.Scale(scale, scale)
	g.Rotate(-sprite.Angle)
	x, y := WorldToScreen(sprite.X, sprite.Y, cam)
	g.Translate(x, y)
	return g
}

// WorldToScreen converts a world point to screen pixels.
func WorldToScreen(x, y float64, cam *component.Camera) (float64, float64) {
	return x - cam.X, cam.ViewportHeight - (y - cam.Y)
}
