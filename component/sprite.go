package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is a drawable image positioned by its centre in world coordinates
// (y up). Angle is in radians, counter-clockwise.
type Sprite struct {
	Image      *ebiten.Image
	X          float64
	Y          float64
	Angle      float64
	Scale      float64
	FacingLeft bool
}

// SpriteList is an ordered, named batch of sprites drawn together.
type SpriteList struct {
	Name    string
	Sprites []*Sprite
}

func NewSpriteList(name string) *SpriteList {
	return &SpriteList{Name: name}
}

func (l *SpriteList) Append(s *Sprite) {
	if l == nil || s == nil {
		return
	}
	l.Sprites = append(l.Sprites, s)
}

func (l *SpriteList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Sprites)
}
