package scene

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
	"github.com/DarkhanShakhan/rt-new/pkg/geometry"
	"github.com/DarkhanShakhan/rt-new/pkg/material"
	"github.com/DarkhanShakhan/rt-new/pkg/renderer"
)

// NewShowcaseScene places every primitive and pattern kind in one room:
// checkered floor and back wall, a rotated cube, a capped cylinder, a
// cone, and spheres wearing the stripe, ring, and gradient patterns, with
// one mirror sphere reflecting the lot.
func NewShowcaseScene(width, height int) (*Scene, error) {
	light := material.NewPointLight(core.NewPoint(-8, 10, -10), core.White)
	b := newBuilder(light)

	checker := material.NewCheckerPattern(core.White, core.NewColor(0.5, 0.5, 0.5))

	floor := material.Default()
	floor.Pattern = checker
	floor.Specular = 0.2
	b.add(geometry.Plane{}, floor, core.Identity())

	wall := material.Default()
	wall.Pattern = checker
	wall.Specular = 0
	b.add(geometry.Plane{}, wall, core.Translation(0, 0, 12).Multiply(core.RotationX(math.Pi/2)))

	cube := material.Default()
	cube.Color = core.NewColor(0.2, 1, 0.3)
	b.add(geometry.Cube{}, cube,
		core.Translation(-4, 1, 3).
			Multiply(core.RotationY(math.Pi/5)))

	cylinder := material.Default()
	cylinder.Color = core.NewColor(0.2, 0.4, 1)
	cylinder.Diffuse = 0.8
	b.add(geometry.Cylinder{Min: 0, Max: 2.5, Closed: true}, cylinder, core.Translation(3.5, 0, 2))

	cone := material.Default()
	cone.Color = core.NewColor(1, 0.7, 0.2)
	b.add(geometry.Cone{Min: -1.5, Max: 0, Closed: true}, cone, core.Translation(0, 1.5, 4.5))

	striped := material.Default()
	striped.Pattern = material.NewStripePattern(core.NewColor(0.9, 0.1, 0.2), core.White)
	if err := striped.Pattern.SetTransform(core.Scaling(0.25, 0.25, 0.25).Multiply(core.RotationZ(math.Pi / 4))); err != nil {
		return nil, err
	}
	b.add(geometry.Sphere{}, striped, core.Translation(-1.7, 1, 0.5))

	ringed := material.Default()
	ringed.Pattern = material.NewRingPattern(core.NewColor(0.1, 0.5, 0.9), core.White)
	if err := ringed.Pattern.SetTransform(core.Scaling(0.2, 0.2, 0.2).Multiply(core.RotationX(math.Pi / 3))); err != nil {
		return nil, err
	}
	b.add(geometry.Sphere{}, ringed, core.Translation(1.6, 1, 0))

	graded := material.Default()
	graded.Pattern = material.NewGradientPattern(core.NewColor(1, 0.2, 0.2), core.NewColor(0.2, 0.2, 1))
	if err := graded.Pattern.SetTransform(core.Translation(1, 0, 0).Multiply(core.Scaling(2, 2, 2))); err != nil {
		return nil, err
	}
	b.add(geometry.Sphere{}, graded, core.Translation(0, 0.75, -1.25).Multiply(core.Scaling(0.75, 0.75, 0.75)))

	mirror := material.Default()
	mirror.Color = core.NewColor(0.1, 0.1, 0.1)
	mirror.Diffuse = 0.3
	mirror.Specular = 1
	mirror.Shininess = 300
	mirror.Reflective = 0.9
	b.add(geometry.Sphere{}, mirror, core.Translation(-0.5, 2, 7).Multiply(core.Scaling(2, 2, 2)))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	return b.build(camera,
		core.NewPoint(0, 3, -9),
		core.NewPoint(0, 1.5, 0),
		core.NewVector(0, 1, 0),
	)
}
