package scene

import (
	"fmt"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
	"github.com/DarkhanShakhan/rt-new/pkg/geometry"
	"github.com/DarkhanShakhan/rt-new/pkg/material"
	"github.com/DarkhanShakhan/rt-new/pkg/renderer"
)

// Scene bundles a ready-to-render world with the camera that frames it
type Scene struct {
	World  *renderer.World
	Camera *renderer.Camera
}

// New builds one of the named demo scenes at the given image size
func New(name string, width, height int) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(width, height)
	case "glass":
		return NewGlassScene(width, height)
	case "showcase":
		return NewShowcaseScene(width, height)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// builder accumulates scene objects and holds the first construction
// error, keeping the scene definitions free of per-object error handling.
type builder struct {
	world *renderer.World
	err   error
}

func newBuilder(light material.PointLight) *builder {
	return &builder{world: renderer.NewWorld(light)}
}

func (b *builder) add(shape geometry.Shape, m material.Material, transform core.Matrix) {
	if b.err != nil {
		return
	}
	o, err := geometry.NewObject(shape, m, transform)
	if err != nil {
		b.err = err
		return
	}
	b.world.AddObject(o)
}

func (b *builder) build(camera *renderer.Camera, from, to core.Point, up core.Vector) (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := camera.SetTransform(core.ViewTransform(from, to, up)); err != nil {
		return nil, err
	}
	return &Scene{World: b.world, Camera: camera}, nil
}
