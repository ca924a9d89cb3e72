package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/adventure/common"
	"github.com/milk9111/adventure/config"
)

func main() {
	configPath := flag.String("config", "", "optional YAML settings file")
	debug := flag.Bool("debug", false, "enable debug mode (physics outlines, state readout, prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "map name in levels/ (basename, .json optional)")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	settings, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("settings")
	}

	// explicitly set flags win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			settings.Debug = *debug
		case "m":
			settings.Window.BaseMonitor = *baseMonitor
		case "level":
			settings.Level.Map = *levelName
		case "log-level":
			settings.Log.Level = *logLevel
		}
	})

	level, err := logrus.ParseLevel(settings.Log.Level)
	if err != nil {
		log.WithError(err).Fatal("log level")
	}
	if settings.Debug && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if settings.Window.BaseMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(settings, log)
	if err != nil {
		log.WithError(err).Fatal("game setup")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !isTermination(err) {
		log.WithError(err).Fatal("game loop")
	}
}
