package component

// Tuning gathers the numbers that drive player movement and animation.
// Forces and impulses are in world units (pixels) per second squared times
// mass; distances are in pixels.
type Tuning struct {
	Gravity float64
	Damping float64

	PlayerFriction      float64
	PlayerDamping       float64
	WallFriction        float64
	DynamicItemFriction float64
	PlayerMass          float64

	MaxHorizontalSpeed float64
	MaxVerticalSpeed   float64

	GroundForce float64
	AirForce    float64
	JumpImpulse float64

	DeadZone                float64
	DistanceToChangeTexture float64
}

// DefaultTuning returns the stock values of the game.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:                 1500,
		Damping:                 1.0,
		PlayerFriction:          1.0,
		PlayerDamping:           0.4,
		WallFriction:            0.7,
		DynamicItemFriction:     0.6,
		PlayerMass:              2.0,
		MaxHorizontalSpeed:      350,
		MaxVerticalSpeed:        1600,
		GroundForce:             8000,
		AirForce:                900,
		JumpImpulse:             1800,
		DeadZone:                0.1,
		DistanceToChangeTexture: 20,
	}
}
