package htree

import (
	"errors"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix[float64]
		want bool
	}{
		{"identity", Identity[float64](), true},
		{"zero translation", Translate(0.0, 0.0), true},
		{"scale 1,1", Scale(1.0, 1.0), true},
		{"rotation 0", Rotate(0.0), true},
		{"translation", Translate(1.0, 0.0), false},
		{"uniform scale", Scale(2.0, 2.0), false},
		{"rotation 90deg", Rotate(math.Pi / 2), false},
		{"zero matrix", Matrix[float64]{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestTransformPoint(t *testing.T) {
	const eps = 1e-12
	tests := []struct {
		name string
		m    Matrix[float64]
		p    Point[float64]
		want Point[float64]
	}{
		{"identity", Identity[float64](), Pt(3.0, 4.0), Pt(3.0, 4.0)},
		{"translate", Translate(1.0, -2.0), Pt(3.0, 4.0), Pt(4.0, 2.0)},
		{"scale", Scale(2.0, 3.0), Pt(3.0, 4.0), Pt(6.0, 12.0)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1.0, 0.0), Pt(0.0, 1.0)},
		{"scale then translate", Translate(1.0, 1.0).Multiply(Scale(2.0, 2.0)), Pt(1.0, 1.0), Pt(3.0, 3.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); !got.ApproxEqual(tt.want, eps) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(5.0, 5.0).Multiply(Scale(2.0, 2.0))
	if got := m.TransformVector(Pt(1.0, 1.0)); got != Pt(2.0, 2.0) {
		t.Errorf("TransformVector = %v, want (2,2)", got)
	}
}

func TestInvert(t *testing.T) {
	const eps = 1e-12
	m := Translate(3.0, -1.0).Multiply(Rotate(0.7)).Multiply(Scale(2.0, 0.5))
	inv, err := m.Invert()
	if err != nil {
		t.Fatalf("Invert() error: %v", err)
	}
	p := Pt(1.25, -7.5)
	if got := inv.TransformPoint(m.TransformPoint(p)); !got.ApproxEqual(p, eps) {
		t.Errorf("inverse round trip = %v, want %v", got, p)
	}
}

func TestInvertSingular(t *testing.T) {
	for _, m := range []Matrix[float64]{{}, Scale(0.0, 1.0), {A: 1, B: 2, D: 2, E: 4}} {
		if _, err := m.Invert(); !errors.Is(err, ErrSingularMatrix) {
			t.Errorf("Matrix%+v.Invert() error = %v, want ErrSingularMatrix", m, err)
		}
	}
}

func TestSimilarity(t *testing.T) {
	const eps = 1e-12
	tests := []struct {
		name     string
		from, to Segment[float64]
	}{
		{"same", Seg(0.0, 0.0, 1.0, 0.0), Seg(0.0, 0.0, 1.0, 0.0)},
		{"translate", Seg(0.0, 0.0, 1.0, 0.0), Seg(2.0, 3.0, 3.0, 3.0)},
		{"rotate", Seg(0.0, 0.0, 1.0, 0.0), Seg(0.0, 0.0, 0.0, 1.0)},
		{"half turn", Seg(0.0, 0.0, 1.0, 0.0), Seg(0.0, 0.0, -1.0, 0.0)},
		{"general", Seg(0.25, 0.3, 0.75, 0.3), Seg(-3.0, 2.0, 5.0, 9.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Transform(Similarity(tt.from, tt.to))
			if !got.ApproxEqual(tt.to, eps*(1+tt.to.Length())) {
				t.Errorf("Similarity maps %v to %v, want %v", tt.from, got, tt.to)
			}
		})
	}
}

func TestSimilarityPreservesAngles(t *testing.T) {
	m := Similarity(Seg(0.0, 0.0, 1.0, 0.0), Seg(1.0, 1.0, 4.0, 5.0))
	a := Seg(0.0, 0.0, 1.0, 0.0).Transform(m)
	b := Seg(0.0, 0.0, 0.0, 1.0).Transform(m)
	if !a.IsPerpendicular(b, 1e-12) {
		t.Errorf("%v and %v should stay perpendicular", a, b)
	}
	if math.Abs(a.Length()-b.Length()) > 1e-12 {
		t.Errorf("lengths %v and %v should stay equal", a.Length(), b.Length())
	}
	// Orientation is kept: b is still counter-clockwise of a.
	if a.Vector().Cross(b.Vector()) <= 0 {
		t.Error("similarity reflected the plane")
	}
}

func TestSimilarityDegenerateFrom(t *testing.T) {
	m := Similarity(Seg(1.0, 1.0, 1.0, 1.0), Seg(3.0, 4.0, 9.0, 9.0))
	if m != Translate(2.0, 3.0) {
		t.Errorf("Similarity from a point = %+v, want translation (2,3)", m)
	}
}

func TestAff3RoundTrip(t *testing.T) {
	a := f64.Aff3{1, 2, 3, 4, 5, 6}
	m := FromAff3[float64](a)
	if m != (Matrix[float64]{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}) {
		t.Errorf("FromAff3(%v) = %+v", a, m)
	}
	if got := m.Aff3(); got != a {
		t.Errorf("Aff3() = %v, want %v", got, a)
	}
}

func TestTransformSeq(t *testing.T) {
	h := New[float64](2)
	const scale = 700.0
	orig := slices.Collect(h.All())
	got := slices.Collect(Transform(h.All(), Scale(scale, scale)))
	if len(got) != len(orig) {
		t.Fatalf("Transform yielded %d segments, want %d", len(got), len(orig))
	}
	for i := range got {
		if math.Abs(got[i].Length()-scale*orig[i].Length()) > 1e-9 {
			t.Errorf("segment %d length = %v, want %v", i, got[i].Length(), scale*orig[i].Length())
		}
	}

	n := 0
	for range Transform(h.All(), Identity[float64]()) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("early stop yielded %d, want 3", n)
	}
}
