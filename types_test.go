package vlist

import "testing"

func TestVec2AddSub(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 2}
	if got := a.Add(b); got != (Vec2{X: 4, Y: 6}) {
		t.Errorf("Add = %+v, want {4 6}", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 2}) {
		t.Errorf("Sub = %+v, want {2 2}", got)
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		other Rect
		want  bool
	}{
		{Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{Rect{X: 10, Y: 0, W: 5, H: 5}, false}, // touching edges don't overlap
		{Rect{X: -5, Y: -5, W: 20, H: 20}, true},
		{Rect{X: 0, Y: 20, W: 10, H: 5}, false},
	}
	for i, c := range cases {
		if got := r.Intersects(c.other); got != c.want {
			t.Errorf("case %d: Intersects(%+v) = %v, want %v", i, c.other, got, c.want)
		}
	}
}
