package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/milk9111/adventure/common"
)

type Settings struct {
	Window WindowConfig `mapstructure:"window"`
	Level  LevelConfig  `mapstructure:"level"`
	Log    LogConfig    `mapstructure:"log"`
	Debug  bool         `mapstructure:"debug"`
}

type WindowConfig struct {
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	Title       string `mapstructure:"title"`
	BaseMonitor bool   `mapstructure:"base_monitor"`
}

type LevelConfig struct {
	Map       string  `mapstructure:"map"`
	TileScale float64 `mapstructure:"tile_scale"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads settings from defaults, an optional YAML file and ADVENTURE_*
// environment variables, in increasing priority.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ADVENTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", common.BaseWidth)
	v.SetDefault("window.height", common.BaseHeight)
	v.SetDefault("window.title", common.Title)
	v.SetDefault("window.base_monitor", false)
	v.SetDefault("level.map", "commando_map.json")
	v.SetDefault("level.tile_scale", 0.5)
	v.SetDefault("log.level", "info")
	v.SetDefault("debug", false)
}

func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Level.Map == "" {
		return fmt.Errorf("config: level map is empty")
	}
	if s.Level.TileScale <= 0 {
		return fmt.Errorf("config: invalid tile scale %v", s.Level.TileScale)
	}
	return nil
}
