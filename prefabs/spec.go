package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type WorldSpec struct {
	Name                string  `yaml:"name"`
	Gravity             float64 `yaml:"gravity"`
	Damping             float64 `yaml:"damping"`
	WallFriction        float64 `yaml:"wall_friction"`
	DynamicItemFriction float64 `yaml:"dynamic_item_friction"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name                    string       `yaml:"name"`
	Friction                float64      `yaml:"friction"`
	Damping                 float64      `yaml:"damping"`
	Mass                    float64      `yaml:"mass"`
	MaxHorizontalSpeed      float64      `yaml:"max_horizontal_speed"`
	MaxVerticalSpeed        float64      `yaml:"max_vertical_speed"`
	GroundForce             float64      `yaml:"ground_force"`
	AirForce                float64      `yaml:"air_force"`
	JumpImpulse             float64      `yaml:"jump_impulse"`
	DeadZone                float64      `yaml:"dead_zone"`
	DistanceToChangeTexture float64      `yaml:"distance_to_change_texture"`
	Spawn                   GridSpec     `yaml:"spawn"`
	Scale                   float64      `yaml:"scale"`
	Collider                ColliderSpec `yaml:"collider"`
	Textures                TexturesSpec `yaml:"textures"`
	Audio                   []AudioSpec  `yaml:"audio"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// GridSpec is a tile coordinate, counted from the bottom-left of the map.
type GridSpec struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
	// Size is the unscaled grid pitch in pixels.
	Size float64 `yaml:"size"`
}

// ColliderSpec is the unscaled size of a box collider.
type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type TexturesSpec struct {
	Idle string   `yaml:"idle"`
	Jump string   `yaml:"jump"`
	Fall string   `yaml:"fall"`
	Walk []string `yaml:"walk"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}
