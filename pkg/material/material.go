package material

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// Material holds the optical properties of a surface: the Phong
// coefficients, an optional procedural pattern overriding the base color,
// and the reflection/refraction parameters used by the recursive shader.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Pattern         *Pattern // nil means the plain material color is used
	Reflective      float64  // 0 matte .. 1 perfect mirror
	Transparency    float64  // 0 opaque .. 1 fully transmissive
	RefractiveIndex float64  // 1.0 is vacuum/air
}

// Default returns the standard material: white, mostly diffuse, opaque
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Glass returns a fully transparent material with the refractive index of
// glass, used by scenes and refraction tests.
func Glass() Material {
	m := Default()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	return m
}

// Lighting computes the Phong illumination of a point on a surface.
// The base color comes from the pattern when present, evaluated through
// the surface's coordinate conversion. A shadowed point receives only the
// ambient term. Diffuse and specular are suppressed when the light is
// behind the surface, and specular additionally requires the reflected
// light to point toward the eye.
func (m Material) Lighting(light PointLight, obj Surface, point core.Point, eyev, normalv core.Vector, inShadow bool) core.Color {
	baseColor := m.Color
	if m.Pattern != nil {
		baseColor = m.Pattern.At(obj, point)
	}

	effectiveColor := baseColor.Blend(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Sub(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectDotEye := lightv.Negate().Reflect(normalv).Dot(eyev)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
