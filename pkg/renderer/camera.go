package renderer

import (
	"math"
	"runtime"
	"sync"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// Camera maps pixel coordinates onto world-space rays. The view plane sits
// at z=-1 in camera space; pixel size and half extents are derived from
// the field of view and aspect ratio at construction.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	PixelSize   float64

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera for an hsize × vsize image with the given
// field of view in radians, initially at the origin looking down -z.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		PixelSize:   halfWidth * 2 / float64(hsize),
		transform:   core.Identity(),
		inverse:     core.Identity(),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
	}
}

// SetTransform replaces the view transform, usually built with
// core.ViewTransform, and recomputes the cached inverse used per pixel.
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Transform returns the camera's view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// RayForPixel returns the world-space ray through the center of the given
// pixel. Both the pixel's view-plane point and the camera origin are moved
// into world space by the inverse view transform before connecting them.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// Untransformed coordinates on the view plane; the camera looks
	// toward -z, so +x in the scene is to the left of the plane.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyPoint(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyPoint(core.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()
	return core.NewRay(origin, direction)
}

// Render traces every pixel of the world into a new canvas. Pixels are
// independent, so rows are fanned out to a pool of workers, one per CPU;
// each worker owns whole rows, so canvas writes never overlap.
func (c *Camera) Render(w *World) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)

	rows := make(chan int, c.VSize)
	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				c.renderRow(w, canvas, y)
			}
		}()
	}

	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
	return canvas
}

func (c *Camera) renderRow(w *World, canvas *Canvas, y int) {
	for x := 0; x < c.HSize; x++ {
		ray := c.RayForPixel(x, y)
		canvas.SetPixel(x, y, w.ColorAt(ray, DefaultDepth))
	}
}
