package core

import "math"

// Epsilon is the tolerance used for floating-point comparisons throughout
// the tracer. Transform chains accumulate rounding error, so exact equality
// is never meaningful on points, vectors, or colors.
const Epsilon = 1e-7

// Point represents a location in 3D space. Under matrix multiplication its
// implicit homogeneous coordinate is 1, so translation applies.
type Point struct {
	X, Y, Z float64
}

// Vector represents a direction with magnitude. Under matrix multiplication
// its implicit homogeneous coordinate is 0, so translation does not apply.
type Vector struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the point displaced by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from other to p
func (p Point) Sub(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubVector returns the point displaced backwards by a vector
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equals reports whether two points are equal within Epsilon
func (p Point) Equals(other Point) bool {
	return floatEquals(p.X, other.X) && floatEquals(p.Y, other.Y) && floatEquals(p.Z, other.Z)
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vector) Divide(scalar float64) Vector {
	return Vector{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Magnitude returns the length of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}
	}
	return Vector{v.X / m, v.Y / m, v.Z / m}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Reflect returns the vector reflected about a surface normal
func (v Vector) Reflect(normal Vector) Vector {
	return v.Sub(normal.Multiply(2 * v.Dot(normal)))
}

// Equals reports whether two vectors are equal within Epsilon
func (v Vector) Equals(other Vector) bool {
	return floatEquals(v.X, other.X) && floatEquals(v.Y, other.Y) && floatEquals(v.Z, other.Z)
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
