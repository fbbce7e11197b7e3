package geometry

import (
	"github.com/DarkhanShakhan/rt-new/pkg/core"
	"github.com/DarkhanShakhan/rt-new/pkg/material"
)

// Object places a canonical-space Shape into the world: it binds the shape
// to a material and a world transform, and caches the transform's inverse
// and inverse-transpose for point and normal conversion. Objects are
// compared by pointer identity; two objects with identical fields are
// still distinct scene participants.
type Object struct {
	Shape    Shape
	Material material.Material

	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
}

// NewObject creates an object with the given shape, material, and world
// transform. Returns an error when the transform is singular.
func NewObject(shape Shape, m material.Material, transform core.Matrix) (*Object, error) {
	o := &Object{
		Shape:            shape,
		Material:         m,
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
	}
	if err := o.SetTransform(transform); err != nil {
		return nil, err
	}
	return o, nil
}

// NewSphere creates a unit sphere with the default material and transform
func NewSphere() *Object {
	return mustIdentityObject(Sphere{})
}

// NewGlassSphere creates a unit sphere with a fully transparent glass material
func NewGlassSphere() *Object {
	o := mustIdentityObject(Sphere{})
	o.Material = material.Glass()
	return o
}

// NewPlane creates a y=0 plane with the default material and transform
func NewPlane() *Object {
	return mustIdentityObject(Plane{})
}

// NewCube creates a unit cube with the default material and transform
func NewCube() *Object {
	return mustIdentityObject(Cube{})
}

// NewCylinder creates a truncated cylinder with the default material
func NewCylinder(min, max float64, closed bool) *Object {
	return mustIdentityObject(Cylinder{Min: min, Max: max, Closed: closed})
}

// NewCone creates a truncated cone with the default material
func NewCone(min, max float64, closed bool) *Object {
	return mustIdentityObject(Cone{Min: min, Max: max, Closed: closed})
}

func mustIdentityObject(shape Shape) *Object {
	// The identity transform is always invertible.
	o, _ := NewObject(shape, material.Default(), core.Identity())
	return o
}

// SetTransform replaces the world transform and recomputes both derived
// caches together; a stale cache would silently corrupt every normal.
// Returns an error for singular transforms, leaving the object unchanged.
func (o *Object) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	o.transform = m
	o.inverse = inv
	o.inverseTranspose = inv.Transpose()
	return nil
}

// Transform returns the object's world transform
func (o *Object) Transform() core.Matrix {
	return o.transform
}

// Intersect converts the world-space ray into the object's local space and
// delegates to the shape. The returned t values are valid in world space
// because the ray direction is not renormalized.
func (o *Object) Intersect(ray core.Ray) []float64 {
	return o.Shape.Intersect(ray.Transform(o.inverse))
}

// NormalAt returns the world-space surface normal at a world-space point.
// The local normal is transformed by the transpose of the inverse, the
// standard technique for keeping normals perpendicular under non-uniform
// scaling, then renormalized.
func (o *Object) NormalAt(worldPoint core.Point) core.Vector {
	localNormal := o.Shape.NormalAt(o.WorldToObject(worldPoint))
	return o.inverseTranspose.MultiplyVector(localNormal).Normalize()
}

// WorldToObject converts a world-space point into the object's local space
func (o *Object) WorldToObject(worldPoint core.Point) core.Point {
	return o.inverse.MultiplyPoint(worldPoint)
}
