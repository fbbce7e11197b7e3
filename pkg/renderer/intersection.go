package renderer

import (
	"math"
	"sort"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
	"github.com/DarkhanShakhan/rt-new/pkg/geometry"
)

// Intersection records one crossing of a ray with an object
type Intersection struct {
	T      float64
	Object *geometry.Object
}

// SortIntersections orders intersections by ascending t. The sort is
// stable so ties keep declaration order; NaN t values never occur.
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the index of the first intersection with t > 0 in sorted
// order: the nearest crossing in front of the ray origin. Intersections
// behind the origin and tangent grazes at exactly t=0 are not visible
// hits.
func Hit(xs []Intersection) (int, bool) {
	for i, x := range xs {
		if x.T > 0 {
			return i, true
		}
	}
	return -1, false
}

// Computation is the precomputed shading state for one hit: world point,
// acne-avoidance offsets, view geometry, and the refractive indices on
// both sides of the surface.
type Computation struct {
	T          float64
	Object     *geometry.Object
	Point      core.Point
	OverPoint  core.Point // nudged along the normal, origin for shadow and reflection rays
	UnderPoint core.Point // nudged beneath the surface, origin for refraction rays
	EyeV       core.Vector
	NormalV    core.Vector
	ReflectV   core.Vector
	Inside     bool
	N1         float64 // refractive index of the medium being left
	N2         float64 // refractive index of the medium being entered
}

// NewComputation builds the shading state for the intersection at
// hitIndex. The full sorted intersection list xs drives the n1/n2
// derivation: walking it in order while toggling membership in an ordered
// containment list reproduces correct nested and overlapping dielectric
// behavior without a CSG graph. The hit is identified by position, not
// value, so duplicate tangent entries stay distinguishable.
func NewComputation(ray core.Ray, xs []Intersection, hitIndex int) Computation {
	hit := xs[hitIndex]

	n1, n2 := 1.0, 1.0
	var containers []*geometry.Object
	for i, x := range xs {
		if i == hitIndex {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}
		if j := indexOf(containers, x.Object); j >= 0 {
			// Leaving the object the ray previously entered.
			containers = append(containers[:j], containers[j+1:]...)
		} else {
			containers = append(containers, x.Object)
		}
		if i == hitIndex {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			break
		}
	}

	point := ray.Position(hit.T)
	eyev := ray.Direction.Negate()
	normalv := hit.Object.NormalAt(point)
	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Negate()
	}

	return Computation{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(normalv.Multiply(core.Epsilon)),
		UnderPoint: point.SubVector(normalv.Multiply(core.Epsilon)),
		EyeV:       eyev,
		NormalV:    normalv,
		ReflectV:   ray.Direction.Reflect(normalv),
		Inside:     inside,
		N1:         n1,
		N2:         n2,
	}
}

func indexOf(objects []*geometry.Object, target *geometry.Object) int {
	for i, o := range objects {
		if o == target {
			return i
		}
	}
	return -1
}

// Schlick returns the Fresnel reflectance by Schlick's approximation.
// When leaving a denser medium it first checks for total internal
// reflection, where all energy reflects, and otherwise evaluates the
// approximation with the transmission-angle cosine.
func (c Computation) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)
	if c.N1 > c.N2 {
		ratio := c.N1 / c.N2
		sin2T := ratio * ratio * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}
	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
