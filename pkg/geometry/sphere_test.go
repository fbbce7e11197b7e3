package geometry

import (
	"math"
	"testing"

	"github.com/DarkhanShakhan/rt-new/pkg/core"
)

func TestSphere_Intersect(t *testing.T) {
	s := Sphere{}
	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vector
		expected  []float64
	}{
		{"through the center", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), []float64{4, 6}},
		{"at a tangent", core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1), []float64{5, 5}},
		{"misses", core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1), nil},
		{"from inside", core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1), []float64{-1, 1}},
		{"sphere behind the ray", core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1), []float64{-6, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := s.Intersect(core.NewRay(tt.origin, tt.direction))
			assertRoots(t, xs, tt.expected)
		})
	}
}

func TestSphere_IntersectOrderedRoots(t *testing.T) {
	// A ray from outside always returns 0 or 2 roots with t0 <= t1.
	s := Sphere{}
	origins := []core.Point{
		core.NewPoint(0, 0, -5),
		core.NewPoint(0, 0.5, -3),
		core.NewPoint(1, 0, -2),
	}
	for _, origin := range origins {
		xs := s.Intersect(core.NewRay(origin, core.NewVector(0, 0, 1)))
		if xs == nil {
			continue
		}
		if len(xs) != 2 {
			t.Fatalf("Expected 0 or 2 roots, got %d", len(xs))
		}
		if xs[0] > xs[1] {
			t.Errorf("Expected ordered roots, got %v > %v", xs[0], xs[1])
		}
	}
}

func TestSphere_NormalAt(t *testing.T) {
	s := Sphere{}
	sqrt3over3 := math.Sqrt(3) / 3
	tests := []struct {
		name     string
		point    core.Point
		expected core.Vector
	}{
		{"on the x axis", core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"on the y axis", core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"on the z axis", core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{"at a nonaxial point", core.NewPoint(sqrt3over3, sqrt3over3, sqrt3over3), core.NewVector(sqrt3over3, sqrt3over3, sqrt3over3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.NormalAt(tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected normal %v, got %v", tt.expected, got)
			}
			if math.Abs(got.Magnitude()-1) > core.Epsilon {
				t.Errorf("Sphere normal should be normalized, magnitude %v", got.Magnitude())
			}
		})
	}
}

func assertRoots(t *testing.T, got, expected []float64) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d roots %v, got %d roots %v", len(expected), expected, len(got), got)
	}
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-9 {
			t.Errorf("Root %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}
