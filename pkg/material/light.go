package material

import "github.com/DarkhanShakhan/rt-new/pkg/core"

// PointLight is a light source concentrated at a single point, radiating
// a single intensity color in all directions with no area and no falloff.
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
