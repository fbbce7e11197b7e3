package geometry

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// Cone is the double-napped cone x²+z² = y² around the y axis, truncated
// to the open interval Min < y < Max, with flat end caps when Closed is
// set. The cap radius at each end equals the cap's |y| coordinate.
type Cone struct {
	Min    float64
	Max    float64
	Closed bool
}

// NewInfiniteCone creates an open double-napped cone extending without bound
func NewInfiniteCone() Cone {
	return Cone{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Intersect solves the cone quadratic, which differs from the cylinder's
// only by the sign of the y terms. When a ≈ 0 the ray is parallel to one
// nappe and the equation degenerates to a single linear root.
func (cone Cone) Intersect(ray core.Ray) []float64 {
	o, d := ray.Origin, ray.Direction
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	if math.Abs(a) <= core.Epsilon {
		if math.Abs(b) < core.Epsilon {
			return cone.intersectCaps(ray, nil)
		}
		t := -c / (2 * b)
		if y := o.Y + t*d.Y; cone.Min < y && y < cone.Max {
			return cone.intersectCaps(ray, []float64{t})
		}
		return cone.intersectCaps(ray, nil)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sqrtD := math.Sqrt(disc)

	var xs []float64
	for _, t := range []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		y := o.Y + t*d.Y
		if cone.Min < y && y < cone.Max {
			xs = append(xs, t)
		}
	}
	return cone.intersectCaps(ray, xs)
}

func (cone Cone) intersectCaps(ray core.Ray, xs []float64) []float64 {
	if !cone.Closed || math.Abs(ray.Direction.Y) <= core.Epsilon {
		return xs
	}
	for _, capY := range []float64{cone.Min, cone.Max} {
		t := (capY - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, math.Abs(capY)) {
			xs = append(xs, t)
		}
	}
	return xs
}

// NormalAt returns a cap normal near an end cap, otherwise the lateral
// normal (x, ∓√(x²+z²), z) with the y component opposing the point's side.
func (cone Cone) NormalAt(point core.Point) core.Vector {
	dist := point.X*point.X + point.Z*point.Z
	switch {
	case dist < 1 && point.Y >= cone.Max-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= cone.Min+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if point.Y > 0 {
			y = -y
		}
		return core.NewVector(point.X, y, point.Z)
	}
}
