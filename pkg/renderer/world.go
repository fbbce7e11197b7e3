package renderer

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
	"github.com/DarkhanShakhan/rt-new/pkg/geometry"
	"github.com/DarkhanShakhan/rt-new/pkg/material"
)

// DefaultDepth is the recursion budget for reflection and refraction.
// Depth exhaustion is not an error, just a physically motivated truncation
// of infinite light bounce.
const DefaultDepth = 4

// World is the scene for one frame: a single point light and the objects
// it illuminates. During rendering a world is a read-only query surface.
type World struct {
	Light   material.PointLight
	Objects []*geometry.Object
}

// NewWorld creates an empty world lit by the given light
func NewWorld(light material.PointLight) *World {
	return &World{Light: light}
}

// AddObject appends an object to the scene
func (w *World) AddObject(o *geometry.Object) {
	w.Objects = append(w.Objects, o)
}

// AddObjects appends several objects to the scene
func (w *World) AddObjects(objects ...*geometry.Object) {
	w.Objects = append(w.Objects, objects...)
}

// Intersect collects the ray's intersections with every object in the
// scene, sorted by ascending t. A ray that misses everything returns nil.
func (w *World) Intersect(ray core.Ray) []Intersection {
	var xs []Intersection
	for _, o := range w.Objects {
		for _, t := range o.Intersect(ray) {
			xs = append(xs, Intersection{T: t, Object: o})
		}
	}
	SortIntersections(xs)
	return xs
}

// ColorAt traces a ray into the scene and returns the color it sees,
// recursing through reflection and refraction up to remaining bounces.
// A ray that hits nothing is black.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := Hit(xs)
	if !ok {
		return core.Black
	}
	comps := NewComputation(ray, xs, hit)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit combines the surface, reflected, and refracted colors for a
// hit. On surfaces that are both reflective and transparent the secondary
// contributions are blended by the Schlick reflectance; otherwise they are
// simply summed, each being black when its coefficient is zero or the
// depth budget is spent.
func (w *World) ShadeHit(comps Computation, remaining int) core.Color {
	m := comps.Object.Material
	surface := m.Lighting(w.Light, comps.Object, comps.Point, comps.EyeV, comps.NormalV, w.IsShadowed(comps.OverPoint))

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether an object blocks the path from the point to
// the light: shadowed iff a hit lies strictly closer than the light.
func (w *World) IsShadowed(point core.Point) bool {
	toLight := w.Light.Position.Sub(point)
	distance := toLight.Magnitude()
	ray := core.NewRay(point, toLight.Normalize())
	xs := w.Intersect(ray)
	if hit, ok := Hit(xs); ok {
		return xs[hit].T < distance
	}
	return false
}

// ReflectedColor traces the mirror bounce off a reflective surface and
// scales it by the reflective coefficient. Black when the surface is not
// reflective or the depth budget is spent.
func (w *World) ReflectedColor(comps Computation, remaining int) core.Color {
	if remaining == 0 || comps.Object.Material.Reflective == 0 {
		return core.Black
	}
	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Multiply(comps.Object.Material.Reflective)
}

// RefractedColor traces the transmitted ray through a transparent surface
// using Snell's law, scaled by the transparency coefficient. Black when
// the surface is opaque, the depth budget is spent, or total internal
// reflection leaves no transmitted ray.
func (w *World) RefractedColor(comps Computation, remaining int) core.Color {
	if remaining == 0 || comps.Object.Material.Transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Sub(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(comps.Object.Material.Transparency)
}
