package geometry

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// Plane is the infinite plane at y=0 in local space
type Plane struct{}

// Intersect returns the single crossing of the ray with y=0, or nil when
// the ray is parallel to the plane (y direction within Epsilon of zero).
func (p Plane) Intersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// NormalAt returns the constant plane normal
func (p Plane) NormalAt(core.Point) core.Vector {
	return core.NewVector(0, 1, 0)
}
