package core

// Color represents an RGB color with unclamped channels. Channels exceed
// [0,1] freely while light accumulates; clamping happens only at output.
type Color struct {
	R, G, B float64
}

// Common colors used as shading base cases and pattern defaults.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Sub returns the difference of two colors
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Blend returns the component-wise (Hadamard) product of two colors,
// modeling one color filtering another.
func (c Color) Blend(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors are equal within Epsilon
func (c Color) Equals(other Color) bool {
	return floatEquals(c.R, other.R) && floatEquals(c.G, other.G) && floatEquals(c.B, other.B)
}
