package component

// Camera is the viewport offset in world coordinates (bottom-left corner,
// y up) and the viewport size.
type Camera struct {
	ViewportWidth  float64
	ViewportHeight float64
	X              float64
	Y              float64
}
