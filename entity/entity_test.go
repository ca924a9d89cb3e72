package entity

import (
	"io"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/levels"
	"github.com/milk9111/adventure/physics"
	"github.com/milk9111/adventure/prefabs"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func TestMergeSolidCells(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		solid  []bool
		want   []CellRect
	}{
		{
			name: "empty", width: 2, height: 2,
			solid: []bool{false, false, false, false},
		},
		{
			name: "full_block", width: 2, height: 2,
			solid: []bool{true, true, true, true},
			want:  []CellRect{{Col: 0, Row: 0, W: 2, H: 2}},
		},
		{
			name: "row_then_column", width: 3, height: 2,
			solid: []bool{
				true, true, true,
				true, false, false,
			},
			want: []CellRect{{Col: 0, Row: 0, W: 3, H: 1}, {Col: 0, Row: 1, W: 1, H: 1}},
		},
		{
			name: "gap_splits_row", width: 3, height: 1,
			solid: []bool{true, false, true},
			want:  []CellRect{{Col: 0, Row: 0, W: 1, H: 1}, {Col: 2, Row: 0, W: 1, H: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeSolidCells(tt.solid, tt.width, tt.height)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("rect %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func testLevel(t *testing.T) *levels.Level {
	t.Helper()
	doc := `{"width":3,"height":2,"tile_size":128,
		"tiles":[{"id":1,"path":"tiles/grass.png"},{"id":4,"path":"tiles/crate.png"}],
		"layers":[
			{"name":"Platforms","data":[0,0,0,1,1,1]},
			{"name":"Background","data":[0,0,0,0,0,0]},
			{"name":"Dynamic items","data":[0,4,0,0,0,0]},
			{"name":"Goal","data":[0,0,0,0,0,0]}]}`
	lvl, err := levels.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return lvl
}

func TestNewTileMapPositions(t *testing.T) {
	m, err := NewTileMap(testLevel(t), 0.5, nil)
	if err != nil {
		t.Fatalf("tilemap: %v", err)
	}
	if m.TileSize != 64 {
		t.Fatalf("expected tile size 64, got %v", m.TileSize)
	}
	if m.Platforms.Len() != 3 || m.DynamicItems.Len() != 1 || m.Background.Len() != 0 {
		t.Fatalf("unexpected layer sizes %d/%d/%d", m.Platforms.Len(), m.DynamicItems.Len(), m.Background.Len())
	}
	first := m.Platforms.Sprites[0]
	if first.X != 32 || first.Y != 32 {
		t.Fatalf("bottom-left tile centre: got (%v,%v)", first.X, first.Y)
	}
	item := m.DynamicItems.Sprites[0]
	if item.X != 96 || item.Y != 96 {
		t.Fatalf("item centre: got (%v,%v)", item.X, item.Y)
	}
}

func TestNewTileMapMissingLayer(t *testing.T) {
	lvl := testLevel(t)
	lvl.Layers = lvl.Layers[:3]
	if _, err := NewTileMap(lvl, 1, nil); err == nil {
		t.Fatalf("expected error for missing Goal layer")
	}
}

func TestTileMapBodies(t *testing.T) {
	m, err := NewTileMap(testLevel(t), 0.5, nil)
	if err != nil {
		t.Fatalf("tilemap: %v", err)
	}
	w := physics.NewWorld(cp.Vector{Y: -1500}, 1, 1.0/60.0, quietLogger())
	walls, err := m.AddBodies(w, component.DefaultTuning())
	if err != nil {
		t.Fatalf("bodies: %v", err)
	}
	if len(walls) != 1 {
		t.Fatalf("expected one merged wall, got %d", len(walls))
	}
	if p := walls[0].Params(); p.Width != 192 || p.Height != 64 || p.Friction != 0.7 || !p.Static || p.Category != physics.CategoryWall {
		t.Fatalf("unexpected wall params %+v", p)
	}
	if pos := walls[0].Position(); pos.X != 96 || pos.Y != 32 {
		t.Fatalf("unexpected wall centre %v", pos)
	}
}

// Items are scenery: a body walking across the crate cell must pass through
// it and the crate sprite must stay put.
func TestTileMapItemsAreNotSolid(t *testing.T) {
	m, err := NewTileMap(testLevel(t), 0.5, nil)
	if err != nil {
		t.Fatalf("tilemap: %v", err)
	}
	w := physics.NewWorld(cp.Vector{Y: -1500}, 1, 1.0/60.0, quietLogger())
	if _, err := m.AddBodies(w, component.DefaultTuning()); err != nil {
		t.Fatalf("bodies: %v", err)
	}
	walker := w.AddBody(cp.Vector{X: 20, Y: 96}, physics.BodyParams{
		Width: 20, Height: 60, Mass: 2, Moment: physics.MomentInfinite,
		MaxHorizontalVelocity: 350, Category: physics.CategoryPlayer,
	})

	crate := m.DynamicItems.Sprites[0]
	for i := 0; i < 60; i++ {
		w.SetFriction(walker, 0)
		w.ApplyForce(walker, cp.Vector{X: 8000})
		w.Step()
	}

	if x := walker.Position().X; x <= crate.X+32 {
		t.Fatalf("walker stopped at x=%v, crate right edge is %v", x, crate.X+32)
	}
	if crate.X != 96 || crate.Y != 96 {
		t.Fatalf("crate sprite moved to (%v,%v)", crate.X, crate.Y)
	}
}

func TestLoadTuningFromPrefabs(t *testing.T) {
	tun, err := LoadTuning()
	if err != nil {
		t.Fatalf("tuning: %v", err)
	}
	if tun != component.DefaultTuning() {
		t.Fatalf("prefab tuning %+v differs from defaults %+v", tun, component.DefaultTuning())
	}
}

func TestNewTuningOverrides(t *testing.T) {
	tun := NewTuning(&prefabs.WorldSpec{Gravity: 900}, &prefabs.PlayerSpec{JumpImpulse: 1000})
	if tun.Gravity != 900 || tun.JumpImpulse != 1000 {
		t.Fatalf("overrides not applied: %+v", tun)
	}
	if tun.GroundForce != 8000 {
		t.Fatalf("default lost: %+v", tun)
	}
}

func TestNewPlayerSpawn(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	if pos := SpawnPosition(spec); pos.X != 96 || pos.Y != 160 {
		t.Fatalf("unexpected spawn %v", pos)
	}

	w := physics.NewWorld(cp.Vector{Y: -1500}, 1, 1.0/60.0, quietLogger())
	p, err := NewPlayer(w, spec, component.DefaultTuning(), nil, nil)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	params := p.Body.Params()
	if params.Width != 48 || params.Height != 64 || params.Mass != 2 || params.Moment != physics.MomentInfinite {
		t.Fatalf("unexpected body params %+v", params)
	}
	if params.MaxHorizontalVelocity != 350 || params.MaxVerticalVelocity != 1600 {
		t.Fatalf("unexpected caps %+v", params)
	}
	if p.Sprite.X != 96 || p.Sprite.Y != 160 {
		t.Fatalf("sprite not at spawn: (%v,%v)", p.Sprite.X, p.Sprite.Y)
	}

	w.ApplyImpulse(p.Body, cp.Vector{X: 100})
	w.Step()
	w.Step()
	if p.Sprite.X <= 96 {
		t.Fatalf("sprite did not follow body, x=%v", p.Sprite.X)
	}
}

func TestSyncTextureMirrorsLeft(t *testing.T) {
	p := &Player{State: &component.Player{}, Sprite: &component.Sprite{}}
	p.State.Texture = component.Texture{Kind: component.TextureFall, Facing: component.FacingLeft}
	p.SyncTexture()
	if !p.Sprite.FacingLeft {
		t.Fatalf("expected mirrored sprite")
	}
}

func TestNewCameraFallback(t *testing.T) {
	cam := NewCamera(&prefabs.CameraSpec{Width: 1200, Height: 750}, 0, 600)
	if cam.ViewportWidth != 1200 || cam.ViewportHeight != 600 {
		t.Fatalf("unexpected viewport %+v", cam)
	}
}
