package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/adventure/common"
	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/config"
	"github.com/milk9111/adventure/entity"
	"github.com/milk9111/adventure/physics"
	"github.com/milk9111/adventure/prefabs"
)

// Draw list names that have no map layer behind them.
const (
	ListBullets = "Bullets"
	ListPlayer  = "Player"
)

// PhysicsWorld is what the game systems need from the simulation.
type PhysicsWorld interface {
	Step()
	IsOnGround(b *physics.Body) bool
	ApplyForce(b *physics.Body, force cp.Vector)
	ApplyImpulse(b *physics.Body, impulse cp.Vector)
	SetFriction(b *physics.Body, friction float64)
}

// Scene is the running level: tuning, physics, player, camera and the sprite
// lists in draw order.
type Scene struct {
	Tuning  component.Tuning
	Physics PhysicsWorld
	// World is the concrete physics world when the scene was loaded from
	// assets; nil when Physics is a stand-in.
	World *physics.World
	// WallBodies are the merged static colliders of the Platforms layer.
	WallBodies []*physics.Body

	Map    *entity.TileMap
	Player *entity.Player
	Camera *component.Camera
	Input  *component.Input

	Walls   *component.SpriteList
	Bullets *component.SpriteList
	Items   *component.SpriteList
	// Background and Goal come straight from the map.
	Background *component.SpriteList
	Goal       *component.SpriteList
	Players    *component.SpriteList

	Log logrus.FieldLogger
}

// Lists returns the sprite lists in the order they are drawn.
func (s *Scene) Lists() []*component.SpriteList {
	if s == nil {
		return nil
	}
	return []*component.SpriteList{s.Walls, s.Bullets, s.Items, s.Background, s.Goal, s.Players}
}

// Load builds the scene described by settings.
func Load(settings *config.Settings, log logrus.FieldLogger) (*Scene, error) {
	if settings == nil {
		return nil, fmt.Errorf("scene: nil settings")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	tuning, err := entity.LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	world := physics.NewWorld(cp.Vector{Y: -tuning.Gravity}, tuning.Damping, 1.0/float64(common.TPS), log)

	mapLog := log.WithFields(logrus.Fields{"map": settings.Level.Map, "scale": settings.Level.TileScale})
	mapLog.Info("map loading")
	tm, err := entity.LoadTileMap(settings.Level.Map, settings.Level.TileScale)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	mapLog.Info("map loaded")

	log.Info("layers loading")
	walls, err := tm.AddBodies(world, tuning)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	textures, err := entity.LoadPlayerTextures(playerSpec)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	clips, err := entity.LoadPlayerAudio(playerSpec)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	player, err := entity.NewPlayer(world, playerSpec, tuning, textures, clips)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s := New(tuning, world, tm, player, entity.NewCamera(cameraSpec, float64(settings.Window.Width), float64(settings.Window.Height)), log)
	s.World = world
	s.WallBodies = walls
	log.WithFields(logrus.Fields{
		"walls":      len(walls),
		"items":      s.Items.Len(),
		"platforms":  s.Walls.Len(),
		"background": s.Background.Len(),
		"goal":       s.Goal.Len(),
	}).Info("layers loaded")
	return s, nil
}

// New assembles a scene from already built parts. tm may be nil.
func New(t component.Tuning, pw PhysicsWorld, tm *entity.TileMap, player *entity.Player, cam *component.Camera, log logrus.FieldLogger) *Scene {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cam == nil {
		cam = &component.Camera{}
	}
	s := &Scene{
		Tuning:  t,
		Physics: pw,
		Map:     tm,
		Player:  player,
		Camera:  cam,
		Input:   &component.Input{},
		Bullets: component.NewSpriteList(ListBullets),
		Players: component.NewSpriteList(ListPlayer),
		Log:     log,
	}
	if tm != nil {
		s.Walls = tm.Platforms
		s.Items = tm.DynamicItems
		s.Background = tm.Background
		s.Goal = tm.Goal
	}
	if player != nil {
		s.Players.Append(player.Sprite)
	}
	return s
}

// ApplyTuning swaps the tuning of a running scene and pushes every value
// the physics world caches: gravity, damping, player mass, player friction,
// velocity caps and wall friction. Player friction only lasts until the next
// movement update replaces it.
func (s *Scene) ApplyTuning(t component.Tuning) {
	if s == nil {
		return
	}
	s.Tuning = t
	if s.World == nil {
		return
	}
	s.World.SetGravity(cp.Vector{Y: -t.Gravity})
	s.World.SetDamping(t.Damping)
	for _, wall := range s.WallBodies {
		s.World.SetFriction(wall, t.WallFriction)
	}
	if s.Player != nil && s.Player.Body != nil {
		s.World.SetMass(s.Player.Body, t.PlayerMass)
		s.World.SetFriction(s.Player.Body, t.PlayerFriction)
		s.Player.Body.SetMaxVelocity(t.MaxHorizontalSpeed, t.MaxVerticalSpeed)
	}
}
