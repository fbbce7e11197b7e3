package scene

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
	"github.com/DarkhanShakhan/rt-new/pkg/geometry"
	"github.com/DarkhanShakhan/rt-new/pkg/material"
	"github.com/DarkhanShakhan/rt-new/pkg/renderer"
)

// NewDefaultScene creates the canonical two-sphere test world: a larger
// green-tinted sphere with a half-size sphere inside it, lit from the
// upper left, viewed head-on from -z.
func NewDefaultScene(width, height int) (*Scene, error) {
	light := material.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	b := newBuilder(light)

	outer := material.Default()
	outer.Color = core.NewColor(0.8, 1.0, 0.6)
	outer.Diffuse = 0.7
	outer.Specular = 0.2
	b.add(geometry.Sphere{}, outer, core.Identity())

	b.add(geometry.Sphere{}, material.Default(), core.Scaling(0.5, 0.5, 0.5))

	camera := renderer.NewCamera(width, height, math.Pi/2)
	return b.build(camera,
		core.NewPoint(0, 0, -5),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	)
}
