package common

const (
	BaseWidth  = 1200
	BaseHeight = 750
	Title      = "Adventure Game"
)

// TPS is the fixed update rate; the physics world advances 1/TPS per step.
const TPS = 60
