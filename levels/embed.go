package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// ErrLayerNotFound is returned when a map has no layer with the requested name.
var ErrLayerNotFound = errors.New("levels: layer not found")

// Level is a tile map. Layer data is row-major, starting at the top row;
// a tile id of 0 is empty.
type Level struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	TileSize int     `json:"tile_size"`
	Tiles    []Tile  `json:"tiles"`
	Layers   []Layer `json:"layers"`
}

type Tile struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

type Layer struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

// Cell is one non-empty tile of a layer.
type Cell struct {
	Col  int
	Row  int
	Tile Tile
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, cleanLevelName(name))
	if err != nil {
		return nil, fmt.Errorf("levels: read %q: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: invalid size %dx%d", l.Width, l.Height)
	}
	if l.TileSize <= 0 {
		return fmt.Errorf("levels: invalid tile size %d", l.TileSize)
	}
	ids := make(map[int]struct{}, len(l.Tiles))
	for _, t := range l.Tiles {
		ids[t.ID] = struct{}{}
	}
	for _, layer := range l.Layers {
		if len(layer.Data) != l.Width*l.Height {
			return fmt.Errorf("levels: layer %q has %d cells, want %d", layer.Name, len(layer.Data), l.Width*l.Height)
		}
		for i, id := range layer.Data {
			if id == 0 {
				continue
			}
			if _, ok := ids[id]; !ok {
				return fmt.Errorf("levels: layer %q cell %d uses unknown tile %d", layer.Name, i, id)
			}
		}
	}
	return nil
}

// Layer returns the layer with the given name.
func (l *Level) Layer(name string) (*Layer, error) {
	for i := range l.Layers {
		if l.Layers[i].Name == name {
			return &l.Layers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
}

func (l *Level) tile(id int) (Tile, bool) {
	for _, t := range l.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}

// Cells lists the non-empty tiles of a layer in row-major order.
func (l *Level) Cells(layer *Layer) []Cell {
	if layer == nil {
		return nil
	}
	var cells []Cell
	for i, id := range layer.Data {
		if id == 0 {
			continue
		}
		t, ok := l.tile(id)
		if !ok {
			continue
		}
		cells = append(cells, Cell{Col: i % l.Width, Row: i / l.Width, Tile: t})
	}
	return cells
}

// Solid reports, per cell, whether the layer has a tile there.
func (l *Level) Solid(layer *Layer) []bool {
	if layer == nil {
		return nil
	}
	out := make([]bool, len(layer.Data))
	for i, id := range layer.Data {
		out[i] = id > 0
	}
	return out
}

func cleanLevelName(name string) string {
	s := strings.TrimPrefix(path.Clean("/"+name), "/")
	s = strings.TrimPrefix(s, "levels/")
	if path.Ext(s) == "" {
		s += ".json"
	}
	return s
}

const (
	LayerPlatforms    = "Platforms"
	LayerBackground   = "Background"
	LayerDynamicItems = "Dynamic items"
	LayerGoal         = "Goal"
)
