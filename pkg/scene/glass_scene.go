package scene

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
	"github.com/DarkhanShakhan/rt-new/pkg/geometry"
	"github.com/DarkhanShakhan/rt-new/pkg/material"
	"github.com/DarkhanShakhan/rt-new/pkg/renderer"
)

// NewGlassScene creates a refraction showpiece: a hollow glass sphere
// floating over a checkered floor with colored spheres behind it, so the
// glass bends, inverts, and Fresnel-blends what shows through it.
func NewGlassScene(width, height int) (*Scene, error) {
	light := material.NewPointLight(core.NewPoint(-5, 8, -9), core.White)
	b := newBuilder(light)

	floor := material.Default()
	floor.Pattern = material.NewCheckerPattern(core.White, core.NewColor(0.4, 0.4, 0.4))
	floor.Specular = 0.1
	floor.Reflective = 0.1
	b.add(geometry.Plane{}, floor, core.Identity())

	// Outer glass shell with an air bubble inside: two nested dielectric
	// interfaces exercising the containment-stack n1/n2 tracking.
	glass := material.Glass()
	glass.Color = core.NewColor(0.05, 0.05, 0.05)
	glass.Diffuse = 0.05
	glass.Specular = 1
	glass.Shininess = 300
	glass.Reflective = 0.9
	b.add(geometry.Sphere{}, glass, core.Translation(0, 1.5, 0).Multiply(core.Scaling(1.5, 1.5, 1.5)))

	bubble := material.Glass()
	bubble.RefractiveIndex = 1.0000034
	bubble.Color = core.Black
	bubble.Diffuse = 0
	bubble.Specular = 0
	b.add(geometry.Sphere{}, bubble, core.Translation(0, 1.5, 0).Multiply(core.Scaling(1.1, 1.1, 1.1)))

	red := material.Default()
	red.Color = core.NewColor(1, 0.3, 0.2)
	b.add(geometry.Sphere{}, red, core.Translation(-3, 1, 4))

	blue := material.Default()
	blue.Color = core.NewColor(0.2, 0.3, 1)
	b.add(geometry.Sphere{}, blue, core.Translation(3, 0.75, 3.5).Multiply(core.Scaling(0.75, 0.75, 0.75)))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	return b.build(camera,
		core.NewPoint(0, 2.5, -7),
		core.NewPoint(0, 1.25, 0),
		core.NewVector(0, 1, 0),
	)
}
