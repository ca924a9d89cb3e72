package entity

import (
	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/prefabs"
)

// LoadTuning reads world.yaml and player.yaml into a Tuning.
func LoadTuning() (component.Tuning, error) {
	world, err := prefabs.LoadWorldSpec()
	if err != nil {
		return component.Tuning{}, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return component.Tuning{}, err
	}
	return NewTuning(world, player), nil
}

// NewTuning builds a Tuning from the prefab specs. Zero values keep the
// stock default.
func NewTuning(world *prefabs.WorldSpec, player *prefabs.PlayerSpec) component.Tuning {
	t := component.DefaultTuning()
	if world != nil {
		set(&t.Gravity, world.Gravity)
		set(&t.Damping, world.Damping)
		set(&t.WallFriction, world.WallFriction)
		set(&t.DynamicItemFriction, world.DynamicItemFriction)
	}
	if player != nil {
		set(&t.PlayerFriction, player.Friction)
		set(&t.PlayerDamping, player.Damping)
		set(&t.PlayerMass, player.Mass)
		set(&t.MaxHorizontalSpeed, player.MaxHorizontalSpeed)
		set(&t.MaxVerticalSpeed, player.MaxVerticalSpeed)
		set(&t.GroundForce, player.GroundForce)
		set(&t.AirForce, player.AirForce)
		set(&t.JumpImpulse, player.JumpImpulse)
		set(&t.DeadZone, player.DeadZone)
		set(&t.DistanceToChangeTexture, player.DistanceToChangeTexture)
	}
	return t
}

func set(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
