// Package htree generates the geometry of an H-tree fractal.
//
// # Overview
//
// An H-tree is built from a single trunk stroke. At each endpoint of a
// stroke a shorter stroke is attached, perpendicular to it and centered
// on the endpoint, with its length divided by √2. Repeating this order
// times yields the fractal.
//
// htree only produces line segments. Drawing them, scaling them to
// pixels and saving the result belong to the caller.
//
// # Quick Start
//
//	import "github.com/gogpu/htree"
//
//	tree := htree.New[float64](6)
//	for seg := range tree.All() {
//	    draw(seg.Start.X*700, seg.Start.Y*700, seg.Stop.X*700, seg.Stop.Y*700)
//	}
//
// # Coordinate System
//
// By default the trunk runs horizontally from (0.25, h/2) to (0.75, h/2)
// where h = 1/√2, and every segment of every order lies inside the box
// (0,0)-(1,h). Use [WithRoot] to place the trunk elsewhere; the whole
// fractal follows the trunk by rotation, uniform scale and translation.
//
// # Traversal Order
//
// [HTree.All] yields segments depth-first in pre-order. A segment is
// followed by the subtrees of its four children, in the order returned
// by [Children]: the crossbar at Start, the same crossbar reversed, the
// crossbar at Stop, and that crossbar reversed. A fractal of order n
// therefore yields (4^(n+1)-1)/3 segments, and each depth-d stroke is
// repeated 2^d times in alternating orientation.
//
// [HTree.Strokes] yields each distinct stroke exactly once, level by
// level, which is the cheaper choice for drawing.
//
// # Cost
//
// Time is exponential in order and memory is linear in it: an [Iterator]
// keeps at most 3*order+1 pending segments. Precision runs out long
// before memory does; float64 stops resolving new levels at roughly
// order 100, float32 at roughly order 45.
package htree
