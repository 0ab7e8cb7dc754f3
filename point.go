package htree

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of coordinate types htree can generate geometry for.
type Float interface {
	constraints.Float
}

// Point represents a 2D point or vector.
type Point[T Float] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point[T]) Div(s T) Point[T] {
	return Point[T]{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point[T]) Dot(q Point[T]) T {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point[T]) Cross(q Point[T]) T {
	return p.X*q.Y - p.Y*q.X
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
// The rotation is exact: it only swaps and negates components.
func (p Point[T]) Perp() Point[T] {
	return Point[T]{X: -p.Y, Y: p.X}
}

// Length returns the length of the vector.
func (p Point[T]) Length() T {
	return sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point[T]) LengthSquared() T {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point[T]) Distance(q Point[T]) T {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point[T]) Lerp(q Point[T], t T) Point[T] {
	return Point[T]{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// ApproxEqual reports whether both coordinates of p and q differ by at
// most eps.
func (p Point[T]) ApproxEqual(q Point[T], eps T) bool {
	return abs(p.X-q.X) <= eps && abs(p.Y-q.Y) <= eps
}

// sqrt is evaluated in float64, which is at least as precise as T.
func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
