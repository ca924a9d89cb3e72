package entity

import (
	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/prefabs"
)

// NewCamera sizes the viewport to width x height, falling back to the
// camera prefab when either is not positive.
func NewCamera(spec *prefabs.CameraSpec, width, height float64) *component.Camera {
	if spec != nil {
		if width <= 0 {
			width = spec.Width
		}
		if height <= 0 {
			height = spec.Height
		}
	}
	return &component.Camera{ViewportWidth: width, ViewportHeight: height}
}
