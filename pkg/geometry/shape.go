package geometry

import "github.com/DarkhanShakhan/rt-new/pkg/core"

// Shape is a geometric primitive defined in its own canonical local space
// (unit sphere at the origin, unit cube spanning ±1, plane at y=0, and so
// on). World placement is the Object's job; shapes never see a world-space
// ray or point.
type Shape interface {
	// Intersect returns the t parameters where the local-space ray meets
	// the shape. A miss returns nil.
	Intersect(ray core.Ray) []float64
	// NormalAt returns the surface normal at a local-space point assumed
	// to lie on the shape.
	NormalAt(point core.Point) core.Vector
}
