package core

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant
// is zero. It can only arise from a malformed scene transform (for example
// a zero scale), so it is surfaced at construction time rather than during
// rendering.
var ErrSingularMatrix = errors.New("matrix is singular and cannot be inverted")

// Matrix is a square matrix of size 2 to 4, indexed [row][col].
type Matrix [][]float64

// NewMatrix creates a zero matrix of the given size
func NewMatrix(size int) Matrix {
	m := make(Matrix, size)
	for i := range m {
		m[i] = make([]float64, size)
	}
	return m
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	m := NewMatrix(4)
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Size returns the dimension of the matrix
func (m Matrix) Size() int {
	return len(m)
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	size := m.Size()
	out := NewMatrix(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			sum := 0.0
			for k := 0; k < size; k++ {
				sum += m[row][k] * other[k][col]
			}
			out[row][col] = sum
		}
	}
	return out
}

// MultiplyPoint applies the matrix to a point with homogeneous w=1,
// so translation takes effect.
func (m Matrix) MultiplyPoint(p Point) Point {
	in := [4]float64{p.X, p.Y, p.Z, 1}
	out := m.multiplyTuple(in)
	return Point{out[0], out[1], out[2]}
}

// MultiplyVector applies the matrix to a vector with homogeneous w=0,
// so translation is ignored.
func (m Matrix) MultiplyVector(v Vector) Vector {
	in := [4]float64{v.X, v.Y, v.Z, 0}
	out := m.multiplyTuple(in)
	return Vector{out[0], out[1], out[2]}
}

func (m Matrix) multiplyTuple(in [4]float64) [4]float64 {
	var out [4]float64
	for row, cols := range m {
		for col, e := range cols {
			out[row] += e * in[col]
		}
	}
	return out
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	size := m.Size()
	out := NewMatrix(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			out[row][col] = m[col][row]
		}
	}
	return out
}

// Determinant computes the determinant by cofactor expansion along the
// first row, with the 2x2 case as the recursion base. Cost is factorial in
// size, which is fine at size <= 4.
func (m Matrix) Determinant() float64 {
	if m.Size() == 2 {
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}
	det := 0.0
	for col := range m[0] {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Submatrix returns the matrix with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	size := m.Size()
	out := make(Matrix, 0, size-1)
	for r := 0; r < size; r++ {
		if r == row {
			continue
		}
		outRow := make([]float64, 0, size-1)
		for c := 0; c < size; c++ {
			if c == col {
				continue
			}
			outRow = append(outRow, m[r][c])
		}
		out = append(out, outRow)
	}
	return out
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Inverse computes the inverse via the adjugate method:
// inverse[col][row] = cofactor(row, col) / determinant.
// Returns ErrSingularMatrix when the determinant is zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return nil, ErrSingularMatrix
	}
	size := m.Size()
	out := NewMatrix(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			out[col][row] = m.Cofactor(row, col) / det
		}
	}
	return out, nil
}

// Equals reports whether two matrices are equal within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.Size() != other.Size() {
		return false
	}
	for row, cols := range m {
		for col, e := range cols {
			if math.Abs(e-other[row][col]) >= Epsilon {
				return false
			}
		}
	}
	return true
}
