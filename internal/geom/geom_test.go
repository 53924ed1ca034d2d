package geom

import "testing"

func TestRectUnion(t *testing.T) {
	a := NewRect(10, 10, 20, 20)
	b := NewRect(25, 5, 10, 10)
	got := a.Union(b)
	want := NewRect(10, 5, 25, 25)
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRectUnionEmptyIdentity(t *testing.T) {
	a := NewRect(10, 10, 20, 20)
	if got := a.Union(Rect{}); got != a {
		t.Fatalf("expected %v, got %v", a, got)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Fatalf("expected %v, got %v", a, got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	got := a.Intersect(b)
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := a.Intersect(NewRect(20, 20, 5, 5)); !got.Empty() {
		t.Fatalf("expected empty intersection, got %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(Point{X: 9, Y: 9}) {
		t.Fatalf("expected corner-adjacent point inside")
	}
	if r.Contains(Point{X: 10, Y: 0}) {
		t.Fatalf("expected exclusive right edge outside")
	}
}
