package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/adventure/assets"
	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/levels"
	"github.com/milk9111/adventure/physics"
)

// TileMap is a loaded level: one sprite list per map layer, positioned in
// world coordinates with y up and the bottom-left corner of the map at the
// origin.
type TileMap struct {
	Level    *levels.Level
	Scale    float64
	TileSize float64

	Platforms    *component.SpriteList
	Background   *component.SpriteList
	DynamicItems *component.SpriteList
	Goal         *component.SpriteList
}

// LoadTileMap decodes the named embedded map and builds its sprite lists.
// Every layer the game draws must be present.
func LoadTileMap(name string, scale float64) (*TileMap, error) {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return nil, err
	}
	return NewTileMap(lvl, scale, assets.LoadImage)
}

// ImageLoader resolves a tile image path.
type ImageLoader func(path string) (*ebiten.Image, error)

func NewTileMap(lvl *levels.Level, scale float64, load ImageLoader) (*TileMap, error) {
	if lvl == nil {
		return nil, fmt.Errorf("tilemap: nil level")
	}
	if scale <= 0 {
		scale = 1
	}
	m := &TileMap{
		Level:    lvl,
		Scale:    scale,
		TileSize: float64(lvl.TileSize) * scale,
	}

	lists := []struct {
		name string
		dst  **component.SpriteList
	}{
		{levels.LayerPlatforms, &m.Platforms},
		{levels.LayerBackground, &m.Background},
		{levels.LayerDynamicItems, &m.DynamicItems},
		{levels.LayerGoal, &m.Goal},
	}
	for _, l := range lists {
		layer, err := lvl.Layer(l.name)
		if err != nil {
			return nil, fmt.Errorf("tilemap: %w", err)
		}
		list := component.NewSpriteList(l.name)
		for _, cell := range lvl.Cells(layer) {
			var img *ebiten.Image
			if load != nil {
				img, err = load(cell.Tile.Path)
				if err != nil {
					return nil, fmt.Errorf("tilemap: layer %q: %w", l.name, err)
				}
			}
			x, y := m.CellCenter(cell.Col, cell.Row)
			list.Append(&component.Sprite{Image: img, X: x, Y: y, Scale: scale})
		}
		*l.dst = list
	}
	return m, nil
}

// CellCenter converts a map cell (row 0 at the top) to the world position
// of its centre.
func (m *TileMap) CellCenter(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * m.TileSize
	y := (float64(m.Level.Height-1-row) + 0.5) * m.TileSize
	return x, y
}

// AddBodies registers the Platforms layer with the physics world as merged
// static wall colliders. The other layers are scenery and get no bodies.
func (m *TileMap) AddBodies(w *physics.World, t component.Tuning) ([]*physics.Body, error) {
	layer, err := m.Level.Layer(levels.LayerPlatforms)
	if err != nil {
		return nil, fmt.Errorf("tilemap: %w", err)
	}
	var walls []*physics.Body
	for _, r := range MergeSolidCells(m.Level.Solid(layer), m.Level.Width, m.Level.Height) {
		walls = append(walls, w.AddBody(m.rectCenter(r), physics.BodyParams{
			Width:    float64(r.W) * m.TileSize,
			Height:   float64(r.H) * m.TileSize,
			Friction: t.WallFriction,
			Category: physics.CategoryWall,
			Static:   true,
		}))
	}
	return walls, nil
}

func (m *TileMap) rectCenter(r CellRect) cp.Vector {
	w := float64(r.W) * m.TileSize
	h := float64(r.H) * m.TileSize
	left := float64(r.Col) * m.TileSize
	top := float64(m.Level.Height-r.Row) * m.TileSize
	return cp.Vector{X: left + w/2, Y: top - h/2}
}

// Follow keeps s on top of b: every step that moves b moves s by the same
// amount.
func Follow(b physics.Movable, s *component.Sprite) {
	if b == nil || s == nil {
		return
	}
	b.OnMoved(func(_ *physics.World, dx, dy, dAngle float64) {
		s.X += dx
		s.Y += dy
		s.Angle += dAngle
	})
}

// CellRect is a rectangle of map cells; Col/Row is its top-left cell.
type CellRect struct {
	Col, Row int
	W, H     int
}

// MergeSolidCells covers the solid cells of a row-major grid with
// rectangles, growing each one right first and then down.
func MergeSolidCells(solid []bool, width, height int) []CellRect {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	open := func(x, y int) bool {
		idx := index(x, y)
		return idx < len(solid) && solid[idx] && !visited[idx]
	}

	var rects []CellRect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !open(x, y) {
				continue
			}

			maxW := 0
			for x2 := x; x2 < width && open(x2, y); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !open(x2, y2) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}
			rects = append(rects, CellRect{Col: x, Row: y, W: maxW, H: maxH})
		}
	}
	return rects
}
