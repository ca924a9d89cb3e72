package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/config"
	"github.com/milk9111/adventure/entity"
	"github.com/milk9111/adventure/physics"
	"github.com/milk9111/adventure/prefabs"
	"github.com/milk9111/adventure/scene"
	"github.com/milk9111/adventure/system"
)

type Game struct {
	scene     *scene.Scene
	scheduler *system.Scheduler
	render    *system.RenderSystem
	log       logrus.FieldLogger

	width  int
	height int
	debug  bool

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(settings *config.Settings, log logrus.FieldLogger) (*Game, error) {
	s, err := scene.Load(settings, log)
	if err != nil {
		return nil, err
	}
	system.AttachAnimation(s)

	g := &Game{
		scene: s,
		// Animation runs inside the physics step through the player's moved
		// callback.
		scheduler: system.NewScheduler(
			system.NewInputSystem(nil),
			system.NewPhysicsSystem(),
			system.NewMovementSystem(),
			system.NewCameraSystem(),
			system.NewAudioSystem(),
		),
		render: system.NewRenderSystem(),
		log:    log,
		width:  settings.Window.Width,
		height: settings.Window.Height,
		debug:  settings.Debug,
	}
	system.CenterOn(s.Camera, s.Player.Sprite)
	g.pauseUI = NewPauseUI(g)

	if g.debug {
		g.watchPrefabs()
	}
	return g, nil
}

func (g *Game) watchPrefabs() {
	if info, err := os.Stat(prefabs.Dir); err != nil || !info.IsDir() {
		g.log.WithField("dir", prefabs.Dir).Warn("prefab directory not found; hot reload disabled")
		return
	}
	w, err := prefabs.NewWatcher(prefabs.Dir)
	if err != nil {
		g.log.WithError(err).Warn("prefab watcher failed")
		return
	}
	g.watcher = w
	g.log.WithField("dir", prefabs.Dir).Info("watching prefabs")
}

// drainWatcher applies pending prefab changes without blocking the frame.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			tuning, err := entity.LoadTuning()
			if err != nil {
				g.log.WithError(err).WithField("file", name).Warn("prefab reload failed")
				continue
			}
			g.scene.ApplyTuning(tuning)
			g.log.WithField("file", name).Info("tuning reloaded")
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.WithError(err).Warn("prefab watcher error")
		default:
			return
		}
	}
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	// keys released while paused are never seen
	*g.scene.Input = component.Input{}
	g.log.WithField("paused", paused).Info("pause toggled")
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()
	g.scheduler.Update(g.scene)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.scene, screen)

	if g.debug {
		cam := g.scene.Camera
		physics.DrawDebug(g.scene.World, screen, cam.X, cam.Y)
		ebitenutil.DebugPrint(screen, g.debugText())
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	p := g.scene.Player
	pos := p.Body.Position()
	return fmt.Sprintf("FPS: %.2f  TPS: %.2f\npos: (%.1f, %.1f)  grounded: %v\nfacing: %v  texture: %v/%d  odometer: %.2f",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		pos.X, pos.Y, g.scene.Physics.IsOnGround(p.Body),
		p.State.Facing, p.State.Texture.Kind, p.State.Texture.Frame, p.State.WalkOdometer,
	)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}

// isTermination reports whether err is the normal end of the game loop.
func isTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
