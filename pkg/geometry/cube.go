package geometry

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// Cube is the axis-aligned unit cube spanning -1..1 on every axis
type Cube struct{}

// Intersect uses the slab method: clip the ray's t interval against the
// ±1 planes of each axis and keep the overlap. An empty overlap or an
// interval entirely behind the origin is a miss.
func (c Cube) Intersect(ray core.Ray) []float64 {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))
	if tMax < 0 {
		return nil
	}
	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

func checkAxis(origin, direction float64) (float64, float64) {
	if direction == 0 {
		// The ray never crosses this slab. An origin inside it, faces
		// included, leaves the interval unconstrained; outside it the
		// inverted interval forces a miss. Dividing instead would
		// produce 0/0 = NaN for an origin exactly on a face.
		if -1 <= origin && origin <= 1 {
			return math.Inf(-1), math.Inf(1)
		}
		return math.Inf(1), math.Inf(-1)
	}
	tMin := (-1 - origin) / direction
	tMax := (1 - origin) / direction
	if tMin > tMax {
		return tMax, tMin
	}
	return tMin, tMax
}

// NormalAt picks the face by the axis with the largest absolute
// coordinate; that component, sign preserved, is the normal.
func (c Cube) NormalAt(point core.Point) core.Vector {
	maxC := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))
	switch maxC {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}
