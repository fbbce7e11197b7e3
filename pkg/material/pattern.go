package material

import (
	"math"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// Surface converts world-space points into an object's local space.
// Patterns need it because they are evaluated in pattern space, reached by
// going world → object → pattern.
type Surface interface {
	WorldToObject(point core.Point) core.Point
}

// rule is a procedural coloring function over pattern-local space. The set
// of rules is closed: stripe, ring, gradient, checker, and the test rule.
type rule interface {
	colorAt(point core.Point) core.Color
}

// Pattern is a procedural surface color with its own transform, layered on
// top of the owning object's transform so it can be scaled or rotated
// relative to the surface it decorates.
type Pattern struct {
	rule      rule
	transform core.Matrix
	inverse   core.Matrix
}

func newPattern(r rule) *Pattern {
	return &Pattern{rule: r, transform: core.Identity(), inverse: core.Identity()}
}

// NewStripePattern alternates two colors along x in unit-wide bands
func NewStripePattern(a, b core.Color) *Pattern {
	return newPattern(stripeRule{a, b})
}

// NewRingPattern alternates two colors in concentric rings in the xz plane
func NewRingPattern(a, b core.Color) *Pattern {
	return newPattern(ringRule{a, b})
}

// NewGradientPattern blends linearly from one color to the other along x
func NewGradientPattern(from, to core.Color) *Pattern {
	return newPattern(gradientRule{from, to})
}

// NewCheckerPattern alternates two colors in a 3D checkerboard
func NewCheckerPattern(a, b core.Color) *Pattern {
	return newPattern(checkerRule{a, b})
}

// NewTestPattern returns the pattern-space point as a color, exposing the
// coordinate conversion chain to tests.
func NewTestPattern() *Pattern {
	return newPattern(testRule{})
}

// SetTransform replaces the pattern transform and recomputes its cached
// inverse. Returns an error for singular transforms.
func (p *Pattern) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// Transform returns the pattern transform
func (p *Pattern) Transform() core.Matrix {
	return p.transform
}

// At evaluates the pattern at a world-space point on the given surface
func (p *Pattern) At(obj Surface, worldPoint core.Point) core.Color {
	objectPoint := obj.WorldToObject(worldPoint)
	patternPoint := p.inverse.MultiplyPoint(objectPoint)
	return p.rule.colorAt(patternPoint)
}

type stripeRule struct{ a, b core.Color }

func (r stripeRule) colorAt(p core.Point) core.Color {
	if int(math.Floor(p.X))%2 == 0 {
		return r.a
	}
	return r.b
}

type ringRule struct{ a, b core.Color }

func (r ringRule) colorAt(p core.Point) core.Color {
	if int(math.Floor(math.Sqrt(p.X*p.X+p.Z*p.Z)))%2 == 0 {
		return r.a
	}
	return r.b
}

type gradientRule struct{ from, to core.Color }

func (r gradientRule) colorAt(p core.Point) core.Color {
	fraction := p.X - math.Floor(p.X)
	return r.from.Add(r.to.Sub(r.from).Multiply(fraction))
}

type checkerRule struct{ a, b core.Color }

func (r checkerRule) colorAt(p core.Point) core.Color {
	sum := math.Floor(p.X) + math.Floor(math.Abs(p.Y)) + math.Floor(p.Z)
	if math.Abs(math.Mod(sum, 2)) < core.Epsilon {
		return r.a
	}
	return r.b
}

type testRule struct{}

func (testRule) colorAt(p core.Point) core.Color {
	return core.NewColor(p.X, p.Y, p.Z)
}
