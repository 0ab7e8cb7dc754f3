package htree

import "math"

const (
	// invSqrt2 is the height of the canonical bounding box and the
	// length ratio between a stroke and its parent.
	invSqrt2 = math.Sqrt2 / 2

	// childHalf scales a parent's perpendicular vector to half of a
	// child's length: |parent| / √2 / 2.
	childHalf = math.Sqrt2 / 4
)

// canonicalRoot is the order 0 trunk: horizontal, of length 1/2,
// centered in the box (0,0)-(1,1/√2).
func canonicalRoot[T Float]() Segment[T] {
	y := T(invSqrt2) / 2
	return Segment[T]{
		Start: Point[T]{X: 0.25, Y: y},
		Stop:  Point[T]{X: 0.75, Y: y},
	}
}

// canonicalBounds is the box every canonical segment lies in.
func canonicalBounds[T Float]() Rect[T] {
	return Rect[T]{Max: Point[T]{X: 1, Y: T(invSqrt2)}}
}

// Children returns the four segments attached to parent one level
// deeper. Each is perpendicular to parent, centered on one of its
// endpoints and 1/√2 times its length:
//
//	[0] crossbar at Start, pointing along Perp of parent
//	[1] [0] reversed
//	[2] crossbar at Stop, pointing along Perp of parent
//	[3] [2] reversed
//
// A zero-length parent yields four zero-length children at its
// endpoints.
func Children[T Float](parent Segment[T]) [4]Segment[T] {
	half := parent.Vector().Perp().Mul(T(childHalf))
	atStart := Segment[T]{Start: parent.Start.Sub(half), Stop: parent.Start.Add(half)}
	atStop := Segment[T]{Start: parent.Stop.Sub(half), Stop: parent.Stop.Add(half)}
	return [4]Segment[T]{atStart, atStart.Reverse(), atStop, atStop.Reverse()}
}
