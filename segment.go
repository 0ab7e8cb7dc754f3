package htree

// Segment is one stroke of the fractal, drawn from Start to Stop.
type Segment[T Float] struct {
	Start, Stop Point[T]
}

// Seg is a convenience function to create a Segment.
func Seg[T Float](x0, y0, x1, y1 T) Segment[T] {
	return Segment[T]{Start: Pt(x0, y0), Stop: Pt(x1, y1)}
}

// Vector returns the displacement from Start to Stop.
func (s Segment[T]) Vector() Point[T] {
	return s.Stop.Sub(s.Start)
}

// Length returns the distance between Start and Stop.
func (s Segment[T]) Length() T {
	return s.Vector().Length()
}

// Midpoint returns the point halfway between Start and Stop.
func (s Segment[T]) Midpoint() Point[T] {
	return s.Start.Lerp(s.Stop, 0.5)
}

// Reverse returns the segment drawn in the opposite direction.
func (s Segment[T]) Reverse() Segment[T] {
	return Segment[T]{Start: s.Stop, Stop: s.Start}
}

// IsPerpendicular reports whether s and o meet at a right angle, within
// eps on the cosine of the angle between them. Degenerate segments are
// never perpendicular.
func (s Segment[T]) IsPerpendicular(o Segment[T], eps T) bool {
	u, v := s.Vector(), o.Vector()
	n := u.Length() * v.Length()
	if n == 0 {
		return false
	}
	return abs(u.Dot(v)/n) <= eps
}

// ApproxEqual reports whether s and o have the same Start and the same
// Stop within eps.
func (s Segment[T]) ApproxEqual(o Segment[T], eps T) bool {
	return s.Start.ApproxEqual(o.Start, eps) && s.Stop.ApproxEqual(o.Stop, eps)
}

// SameStroke is like ApproxEqual but ignores direction.
func (s Segment[T]) SameStroke(o Segment[T], eps T) bool {
	return s.ApproxEqual(o, eps) || s.ApproxEqual(o.Reverse(), eps)
}

// Transform applies m to both endpoints.
func (s Segment[T]) Transform(m Matrix[T]) Segment[T] {
	return Segment[T]{Start: m.TransformPoint(s.Start), Stop: m.TransformPoint(s.Stop)}
}

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect[T Float] struct {
	Min, Max Point[T]
}

// Width returns the horizontal extent of r.
func (r Rect[T]) Width() T {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of r.
func (r Rect[T]) Height() T {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether p lies inside r grown by eps on every side.
func (r Rect[T]) Contains(p Point[T], eps T) bool {
	return p.X >= r.Min.X-eps && p.X <= r.Max.X+eps &&
		p.Y >= r.Min.Y-eps && p.Y <= r.Max.Y+eps
}

// boundsOf returns the smallest Rect containing all pts.
func boundsOf[T Float](pts ...Point[T]) Rect[T] {
	r := Rect[T]{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}
