package htree

import (
	"fmt"
	"iter"
	"math/bits"
)

// maxStrokeLevel is the deepest level whose strokes can be indexed by a
// uint64.
const maxStrokeLevel = 63

// NumStrokes returns the number of distinct strokes, 2^(order+1)-1.
// It fails with ErrCountOverflow for order 64 and above.
func (h HTree[T]) NumStrokes() (uint64, error) {
	if h.order > maxStrokeLevel {
		return 0, fmt.Errorf("strokes at order %d: %w", h.order, ErrCountOverflow)
	}
	return ^uint64(0) >> (maxStrokeLevel - h.order), nil
}

// Stroke returns the i-th distinct stroke in level order, or false if i
// is past the last stroke.
//
// Level L holds strokes 2^L-1 through 2^(L+1)-2. Each joins the centers
// of two neighbouring cells of a grid laid over the bounds, with
// 2^(L/2+1) columns and 2^((L+1)/2) rows: horizontally on even levels,
// vertically on odd levels.
func (h HTree[T]) Stroke(i uint64) (Segment[T], bool) {
	if i == ^uint64(0) {
		return Segment[T]{}, false
	}
	level := uint(bits.Len64(i+1) - 1)
	if level > h.order {
		Logger().Debug("htree: stroke out of range", "index", i, "order", h.order)
		return Segment[T]{}, false
	}
	return h.stroke(level, i+1-1<<level), true
}

// Strokes returns each distinct stroke once, in level order. Unlike All
// it needs no stack, and for drawing it does 2^order times less work.
//
// Levels beyond 63 are not enumerated.
func (h HTree[T]) Strokes() iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		Logger().Debug("htree: stroke traversal started", "order", h.order, "root", h.root)
		last := min(h.order, maxStrokeLevel)
		for level := uint(0); level <= last; level++ {
			n := uint64(1) << level
			for j := uint64(0); j < n; j++ {
				if !yield(h.stroke(level, j)) {
					return
				}
			}
		}
	}
}

// stroke returns stroke j of level.
func (h HTree[T]) stroke(level uint, j uint64) Segment[T] {
	cols := uint64(1) << (level/2 + 1)
	rows := uint64(1) << ((level + 1) / 2)

	// Strokes pair up cells 2j and 2j+1 in column-major order on odd
	// levels and row-major order on even levels. Both cell counts are
	// even, so the pair never wraps.
	cell := 2 * j
	var x0, y0, x1, y1 uint64
	if level%2 == 1 {
		x0, y0 = cell/rows, cell%rows
		x1, y1 = x0, y0+1
	} else {
		x0, y0 = cell%cols, cell/cols
		x1, y1 = x0+1, y0
	}

	center := func(x, y uint64) Point[T] {
		return Point[T]{
			X: (T(x) + 0.5) / T(cols),
			Y: (T(y) + 0.5) / T(rows) * T(invSqrt2),
		}
	}
	s := Segment[T]{Start: center(x0, y0), Stop: center(x1, y1)}
	if h.toRoot.IsIdentity() {
		return s
	}
	return s.Transform(h.toRoot)
}
