package geometry

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// Sphere is the canonical unit sphere centered at the origin
type Sphere struct{}

// Intersect solves |O + tD|² = 1 as a quadratic in t, returning both roots
// in ascending order, or nil when the discriminant is negative.
func (s Sphere) Intersect(ray core.Ray) []float64 {
	sphereToRay := ray.Origin.Sub(core.Point{})
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)
	return []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
}

// NormalAt returns the normal at a point on the unit sphere, which is just
// the vector from the origin to the point.
func (s Sphere) NormalAt(point core.Point) core.Vector {
	return point.Sub(core.Point{})
}
