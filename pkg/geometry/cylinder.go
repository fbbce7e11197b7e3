package geometry

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// Cylinder is the radius-1 cylinder around the y axis, truncated to the
// open interval Min < y < Max, with flat end caps when Closed is set.
type Cylinder struct {
	Min    float64
	Max    float64
	Closed bool
}

// NewInfiniteCylinder creates an open cylinder extending without bound
func NewInfiniteCylinder() Cylinder {
	return Cylinder{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Intersect solves the body quadratic in the xz plane and keeps roots
// whose y lies strictly between Min and Max, then adds cap hits. A ray
// parallel to the axis (a ≈ 0) can only strike the caps.
func (cyl Cylinder) Intersect(ray core.Ray) []float64 {
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) < core.Epsilon {
		return cyl.intersectCaps(ray, nil)
	}

	b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
	c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sqrtD := math.Sqrt(disc)

	var xs []float64
	for _, t := range []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		y := ray.Origin.Y + t*ray.Direction.Y
		if cyl.Min < y && y < cyl.Max {
			xs = append(xs, t)
		}
	}
	return cyl.intersectCaps(ray, xs)
}

// intersectCaps appends hits on the y=Min and y=Max caps, requiring the
// in-plane radius to stay within the cylinder.
func (cyl Cylinder) intersectCaps(ray core.Ray, xs []float64) []float64 {
	if !cyl.Closed || math.Abs(ray.Direction.Y) <= core.Epsilon {
		return xs
	}
	for _, capY := range []float64{cyl.Min, cyl.Max} {
		t := (capY - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, 1) {
			xs = append(xs, t)
		}
	}
	return xs
}

// checkCap reports whether the ray at t lies within radius of the y axis
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// NormalAt returns a cap normal when the point sits within Epsilon of an
// end cap and inside its radius, otherwise the radial body normal.
func (cyl Cylinder) NormalAt(point core.Point) core.Vector {
	dist := point.X*point.X + point.Z*point.Z
	switch {
	case dist < 1 && point.Y >= cyl.Max-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= cyl.Min+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(point.X, 0, point.Z)
	}
}
