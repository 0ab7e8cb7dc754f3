package htree

import "iter"

// frame is a segment waiting to be yielded, with its depth below the
// root.
type frame[T Float] struct {
	seg   Segment[T]
	depth uint
}

// Iterator is a pull-based traversal over every segment of an HTree in
// depth-first pre-order. Each call to Next yields exactly one segment.
//
// An Iterator is not safe for concurrent use; start one per goroutine.
// Dropping an Iterator before it is exhausted needs no cleanup.
type Iterator[T Float] struct {
	order uint
	stack []frame[T]
	depth uint
}

// maxPrealloc caps the stack capacity reserved up front.
const maxPrealloc = 256

// Iter starts a new traversal.
func (h HTree[T]) Iter() *Iterator[T] {
	Logger().Debug("htree: traversal started", "order", h.order, "root", h.root)

	c := uint(maxPrealloc)
	if h.order < (maxPrealloc-1)/3 {
		c = 3*h.order + 1
	}
	stack := make([]frame[T], 1, c)
	stack[0] = frame[T]{seg: h.root}
	return &Iterator[T]{order: h.order, stack: stack}
}

// Next returns the next segment, or false once every segment has been
// returned.
func (it *Iterator[T]) Next() (Segment[T], bool) {
	n := len(it.stack)
	if n == 0 {
		return Segment[T]{}, false
	}
	f := it.stack[n-1]
	it.stack = it.stack[:n-1]

	if f.depth < it.order {
		children := Children(f.seg)
		// Reverse push so children[0] is popped next.
		for i := len(children) - 1; i >= 0; i-- {
			it.stack = append(it.stack, frame[T]{seg: children[i], depth: f.depth + 1})
		}
	}
	if len(it.stack) == 0 {
		it.stack = nil
	}
	it.depth = f.depth
	return f.seg, true
}

// Depth returns the depth of the segment most recently returned by
// Next: 0 for the root, order for the leaves.
func (it *Iterator[T]) Depth() uint {
	return it.depth
}

// All returns every segment in depth-first pre-order. Each call starts
// an independent traversal and yields the same sequence.
func (h HTree[T]) All() iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		it := h.Iter()
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			if !yield(s) {
				return
			}
		}
	}
}

// Walk is like All but also yields the depth of each segment.
func (h HTree[T]) Walk() iter.Seq2[uint, Segment[T]] {
	return func(yield func(uint, Segment[T]) bool) {
		it := h.Iter()
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			if !yield(it.Depth(), s) {
				return
			}
		}
	}
}
