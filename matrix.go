package htree

import (
	"iter"
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix[T Float] struct {
	A, B, C T
	D, E, F T
}

// Identity returns the identity transformation matrix.
func Identity[T Float]() Matrix[T] {
	return Matrix[T]{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate[T Float](x, y T) Matrix[T] {
	return Matrix[T]{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale[T Float](x, y T) Matrix[T] {
	return Matrix[T]{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate[T Float](angle T) Matrix[T] {
	cos := T(math.Cos(float64(angle)))
	sin := T(math.Sin(float64(angle)))
	return Matrix[T]{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Similarity returns the rotation, uniform scale and translation that
// maps from.Start onto to.Start and from.Stop onto to.Stop.
// If from has zero length only the translation is kept.
func Similarity[T Float](from, to Segment[T]) Matrix[T] {
	u, v := from.Vector(), to.Vector()
	n := u.LengthSquared()
	if n == 0 {
		d := to.Start.Sub(from.Start)
		return Translate(d.X, d.Y)
	}
	// Complex division v/u gives the rotation and scale as a + bi.
	a := u.Dot(v) / n
	b := u.Cross(v) / n
	m := Matrix[T]{
		A: a, B: -b,
		D: b, E: a,
	}
	t := to.Start.Sub(m.TransformVector(from.Start))
	m.C, m.F = t.X, t.Y
	return m
}

// FromAff3 converts an x/image affine matrix.
func FromAff3[T Float](a f64.Aff3) Matrix[T] {
	return Matrix[T]{
		A: T(a[0]), B: T(a[1]), C: T(a[2]),
		D: T(a[3]), E: T(a[4]), F: T(a[5]),
	}
}

// Aff3 returns m in the layout used by golang.org/x/image/draw.
func (m Matrix[T]) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m.A), float64(m.B), float64(m.C),
		float64(m.D), float64(m.E), float64(m.F),
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix[T]) Multiply(other Matrix[T]) Matrix[T] {
	return Matrix[T]{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix[T]) TransformPoint(p Point[T]) Point[T] {
	return Point[T]{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix[T]) TransformVector(p Point[T]) Point[T] {
	return Point[T]{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse matrix, or ErrSingularMatrix if the
// determinant is exactly zero.
func (m Matrix[T]) Invert() (Matrix[T], error) {
	det := m.A*m.E - m.B*m.D
	if det == 0 {
		return Matrix[T]{}, ErrSingularMatrix
	}

	invDet := 1 / det
	return Matrix[T]{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix[T]) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// Transform returns seq with m applied to every segment. Like seq, the
// result is lazy.
//
// Example:
//
//	// Scale unit coordinates to a 700 pixel wide canvas.
//	for seg := range htree.Transform(tree.All(), htree.Scale(700.0, 700.0)) {
//	    ...
//	}
func Transform[T Float](seq iter.Seq[Segment[T]], m Matrix[T]) iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		for s := range seq {
			if !yield(s.Transform(m)) {
				return
			}
		}
	}
}
