package material

import (
	"errors"
	"testing"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

// scaledSurface is a fake scene object with a fixed world transform, so
// pattern tests can exercise the world → object → pattern chain without a
// real shape.
type scaledSurface struct{ inverse core.Matrix }

func newScaledSurface(t *testing.T, transform core.Matrix) scaledSurface {
	t.Helper()
	inv, err := transform.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	return scaledSurface{inverse: inv}
}

func (s scaledSurface) WorldToObject(p core.Point) core.Point {
	return s.inverse.MultiplyPoint(p)
}

func TestStripePattern(t *testing.T) {
	p := NewStripePattern(core.White, core.Black)
	tests := []struct {
		point    core.Point
		expected core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(0, 1, 0), core.White},
		{core.NewPoint(0, 0, 2), core.White},
		{core.NewPoint(0.9, 0, 0), core.White},
		{core.NewPoint(1, 0, 0), core.Black},
		{core.NewPoint(-0.1, 0, 0), core.Black},
		{core.NewPoint(-1, 0, 0), core.Black},
		{core.NewPoint(-1.1, 0, 0), core.White},
	}
	for _, tt := range tests {
		if got := p.At(flatSurface{}, tt.point); !got.Equals(tt.expected) {
			t.Errorf("Stripe at %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestGradientPattern(t *testing.T) {
	p := NewGradientPattern(core.White, core.Black)
	tests := []struct {
		point    core.Point
		expected core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{core.NewPoint(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{core.NewPoint(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},
	}
	for _, tt := range tests {
		if got := p.At(flatSurface{}, tt.point); !got.Equals(tt.expected) {
			t.Errorf("Gradient at %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestRingPattern(t *testing.T) {
	p := NewRingPattern(core.White, core.Black)
	tests := []struct {
		point    core.Point
		expected core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(1, 0, 0), core.Black},
		{core.NewPoint(0, 0, 1), core.Black},
		{core.NewPoint(0.708, 0, 0.708), core.Black},
	}
	for _, tt := range tests {
		if got := p.At(flatSurface{}, tt.point); !got.Equals(tt.expected) {
			t.Errorf("Ring at %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestCheckerPattern(t *testing.T) {
	p := NewCheckerPattern(core.White, core.Black)
	tests := []struct {
		point    core.Point
		expected core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White},
		{core.NewPoint(0.99, 0, 0), core.White},
		{core.NewPoint(1.01, 0, 0), core.Black},
		{core.NewPoint(0, 0.99, 0), core.White},
		{core.NewPoint(0, 1.01, 0), core.Black},
		{core.NewPoint(0, 0, 0.99), core.White},
		{core.NewPoint(0, 0, 1.01), core.Black},
	}
	for _, tt := range tests {
		if got := p.At(flatSurface{}, tt.point); !got.Equals(tt.expected) {
			t.Errorf("Checker at %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestPattern_Transforms(t *testing.T) {
	t.Run("object transform", func(t *testing.T) {
		obj := newScaledSurface(t, core.Scaling(2, 2, 2))
		p := NewTestPattern()
		got := p.At(obj, core.NewPoint(2, 3, 4))
		if !got.Equals(core.NewColor(1, 1.5, 2)) {
			t.Errorf("Expected (1, 1.5, 2), got %v", got)
		}
	})

	t.Run("pattern transform", func(t *testing.T) {
		p := NewTestPattern()
		if err := p.SetTransform(core.Scaling(2, 2, 2)); err != nil {
			t.Fatalf("SetTransform: %v", err)
		}
		got := p.At(flatSurface{}, core.NewPoint(2, 3, 4))
		if !got.Equals(core.NewColor(1, 1.5, 2)) {
			t.Errorf("Expected (1, 1.5, 2), got %v", got)
		}
	})

	t.Run("object and pattern transforms", func(t *testing.T) {
		obj := newScaledSurface(t, core.Scaling(2, 2, 2))
		p := NewTestPattern()
		if err := p.SetTransform(core.Translation(0.5, 1, 1.5)); err != nil {
			t.Fatalf("SetTransform: %v", err)
		}
		got := p.At(obj, core.NewPoint(2.5, 3, 3.5))
		if !got.Equals(core.NewColor(0.75, 0.5, 0.25)) {
			t.Errorf("Expected (0.75, 0.5, 0.25), got %v", got)
		}
	})
}

func TestPattern_SetTransformSingular(t *testing.T) {
	p := NewStripePattern(core.White, core.Black)
	if err := p.SetTransform(core.Scaling(0, 1, 1)); !errors.Is(err, core.ErrSingularMatrix) {
		t.Fatalf("Expected ErrSingularMatrix, got %v", err)
	}
	if !p.Transform().Equals(core.Identity()) {
		t.Errorf("Transform changed after failed SetTransform: %v", p.Transform())
	}
}
