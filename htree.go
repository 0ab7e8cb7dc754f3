package htree

import "fmt"

// HTree describes an H-tree fractal of a fixed order. It is a small
// immutable value: copying it is cheap and every traversal method may be
// called any number of times, from any number of goroutines.
type HTree[T Float] struct {
	order uint
	root  Segment[T]

	// toRoot maps canonical geometry onto root.
	toRoot Matrix[T]
}

// New returns an HTree of the given order. Order 0 is the trunk alone;
// each increment adds one generation of branches.
//
// There is no upper bound on order, but traversal time grows as 4^order.
// See the package documentation for where precision runs out.
func New[T Float](order uint, opts ...Option[T]) HTree[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	h := HTree[T]{
		order:  order,
		root:   o.root,
		toRoot: Identity[T](),
	}
	if o.custom {
		h.toRoot = Similarity(canonicalRoot[T](), o.root)
	}
	return h
}

// Order returns the recursion depth.
func (h HTree[T]) Order() uint {
	return h.order
}

// Root returns the trunk segment, the only segment of order 0.
func (h HTree[T]) Root() Segment[T] {
	return h.root
}

// Bounds returns the axis-aligned box containing every segment of every
// order. For the canonical trunk this is (0,0)-(1,1/√2).
func (h HTree[T]) Bounds() Rect[T] {
	b := canonicalBounds[T]()
	return boundsOf(
		h.toRoot.TransformPoint(b.Min),
		h.toRoot.TransformPoint(Point[T]{X: b.Max.X, Y: b.Min.Y}),
		h.toRoot.TransformPoint(b.Max),
		h.toRoot.TransformPoint(Point[T]{X: b.Min.X, Y: b.Max.Y}),
	)
}

// Count returns the number of segments All yields, (4^(order+1)-1)/3.
// It fails with ErrCountOverflow for order 32 and above.
func (h HTree[T]) Count() (uint64, error) {
	if h.order >= 32 {
		return 0, fmt.Errorf("count at order %d: %w", h.order, ErrCountOverflow)
	}
	// 4^(order+1)-1 is a run of 2*(order+1) one bits.
	return (^uint64(0) >> (64 - 2*(h.order+1))) / 3, nil
}

// String implements fmt.Stringer.
func (h HTree[T]) String() string {
	return fmt.Sprintf("HTree(order=%d, root=%v)", h.order, h.root)
}
