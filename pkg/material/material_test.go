package material

import (
	"math"
	"testing"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// flatSurface stands in for a scene object whose transform is the identity.
type flatSurface struct{}

func (flatSurface) WorldToObject(p core.Point) core.Point { return p }

func assertColorApprox(t *testing.T, got, expected core.Color, tol float64) {
	t.Helper()
	if math.Abs(got.R-expected.R) > tol || math.Abs(got.G-expected.G) > tol || math.Abs(got.B-expected.B) > tol {
		t.Errorf("Expected color %v, got %v", expected, got)
	}
}

func TestDefault(t *testing.T) {
	m := Default()
	if !m.Color.Equals(core.White) {
		t.Errorf("Expected white, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected Phong coefficients: %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1 {
		t.Errorf("Unexpected optical coefficients: %+v", m)
	}
}

func TestGlass(t *testing.T) {
	m := Glass()
	if m.Transparency != 1 || m.RefractiveIndex != 1.5 {
		t.Errorf("Unexpected glass material: %+v", m)
	}
}

func TestMaterial_Lighting(t *testing.T) {
	m := Default()
	point := core.NewPoint(0, 0, 0)
	normalv := core.NewVector(0, 0, -1)

	tests := []struct {
		name     string
		eyev     core.Vector
		light    PointLight
		inShadow bool
		expected core.Color
	}{
		{
			"eye between light and surface",
			core.NewVector(0, 0, -1),
			NewPointLight(core.NewPoint(0, 0, -10), core.White),
			false,
			core.NewColor(1.9, 1.9, 1.9),
		},
		{
			"eye offset 45 degrees",
			core.NewVector(0, math.Sqrt2/2, -math.Sqrt2/2),
			NewPointLight(core.NewPoint(0, 0, -10), core.White),
			false,
			core.NewColor(1.0, 1.0, 1.0),
		},
		{
			"light offset 45 degrees",
			core.NewVector(0, 0, -1),
			NewPointLight(core.NewPoint(0, 10, -10), core.White),
			false,
			core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			"eye in the reflection path",
			core.NewVector(0, -math.Sqrt2/2, -math.Sqrt2/2),
			NewPointLight(core.NewPoint(0, 10, -10), core.White),
			false,
			core.NewColor(1.6364, 1.6364, 1.6364),
		},
		{
			"light behind the surface",
			core.NewVector(0, 0, -1),
			NewPointLight(core.NewPoint(0, 0, 10), core.White),
			false,
			core.NewColor(0.1, 0.1, 0.1),
		},
		{
			"surface in shadow",
			core.NewVector(0, 0, -1),
			NewPointLight(core.NewPoint(0, 0, -10), core.White),
			true,
			core.NewColor(0.1, 0.1, 0.1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Lighting(tt.light, flatSurface{}, point, tt.eyev, normalv, tt.inShadow)
			assertColorApprox(t, got, tt.expected, 1e-4)
		})
	}
}

func TestMaterial_LightingWithPattern(t *testing.T) {
	m := Default()
	m.Pattern = NewStripePattern(core.White, core.Black)
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	light := NewPointLight(core.NewPoint(0, 0, -10), core.White)
	eyev := core.NewVector(0, 0, -1)
	normalv := core.NewVector(0, 0, -1)

	c1 := m.Lighting(light, flatSurface{}, core.NewPoint(0.9, 0, 0), eyev, normalv, false)
	c2 := m.Lighting(light, flatSurface{}, core.NewPoint(1.1, 0, 0), eyev, normalv, false)
	if !c1.Equals(core.White) {
		t.Errorf("Expected white at x=0.9, got %v", c1)
	}
	if !c2.Equals(core.Black) {
		t.Errorf("Expected black at x=1.1, got %v", c2)
	}
}
