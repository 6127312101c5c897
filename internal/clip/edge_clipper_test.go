package clip

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 5), NewRect(2, 3, 4, 5)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), NewRect(0, 0, 0, 0)},
		{"touching", NewRect(0, 0, 10, 10), NewRect(10, 0, 5, 5), NewRect(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClipSegment(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 10, 10))

	tests := []struct {
		name string
		in   Seg
		want Seg
		ok   bool
	}{
		{"inside", Seg{1, 1, 8, 5}, Seg{1, 1, 8, 5}, true},
		{"diagonal from top-left", Seg{-5, -5, 5, 5}, Seg{0, 0, 5, 5}, true},
		{"horizontal crossing", Seg{-3, 4, 20, 4}, Seg{9, 4, 0, 4}, true},
		{"vertical crossing", Seg{6, -1, 6, 30}, Seg{6, 9, 6, 0}, true},
		{"reject left", Seg{-5, 0, -1, 9}, Seg{}, false},
		{"reject below", Seg{0, 10, 9, 12}, Seg{}, false},
		{"miss corner", Seg{-5, 3, 3, -5}, Seg{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ec.ClipSegment(tt.in)
			if ok != tt.ok {
				t.Fatalf("ClipSegment(%+v) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ClipSegment(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClipSegmentSwapsInsideStart(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 10, 10))
	got, ok := ec.ClipSegment(Seg{5, 5, 15, 5})
	if !ok {
		t.Fatal("segment rejected")
	}
	if got != (Seg{9, 5, 5, 5}) {
		t.Errorf("ClipSegment() = %+v, want {9 5 5 5}", got)
	}
}

func TestClipSegmentStaysInside(t *testing.T) {
	r := NewRect(3, 2, 17, 11)
	ec := NewEdgeClipper(r)
	for x0 := -10; x0 <= 30; x0 += 7 {
		for y0 := -10; y0 <= 30; y0 += 5 {
			for x1 := -12; x1 <= 32; x1 += 9 {
				for y1 := -12; y1 <= 32; y1 += 11 {
					s, ok := ec.ClipSegment(Seg{x0, y0, x1, y1})
					if !ok {
						continue
					}
					if !r.Contains(s.X0, s.Y0) || !r.Contains(s.X1, s.Y1) {
						t.Fatalf("ClipSegment(%d,%d,%d,%d) = %+v escapes %+v", x0, y0, x1, y1, s, r)
					}
				}
			}
		}
	}
}

func TestClipSegmentEmptyClip(t *testing.T) {
	ec := NewEdgeClipper(NewRect(5, 5, 0, 3))
	if _, ok := ec.ClipSegment(Seg{0, 0, 10, 10}); ok {
		t.Error("empty clip accepted a segment")
	}
}

func TestClipSpan(t *testing.T) {
	ec := NewEdgeClipper(NewRect(2, 2, 5, 5))

	if x0, x1, ok := ec.ClipSpan(10, 0, 3); !ok || x0 != 2 || x1 != 6 {
		t.Errorf("ClipSpan(10, 0, 3) = %d, %d, %v; want 2, 6, true", x0, x1, ok)
	}
	if _, _, ok := ec.ClipSpan(0, 10, 7); ok {
		t.Error("span below clip accepted")
	}
	if _, _, ok := ec.ClipSpan(7, 10, 3); ok {
		t.Error("span right of clip accepted")
	}
	if y0, y1, ok := ec.ClipVSpan(4, -5, 3); !ok || y0 != 2 || y1 != 3 {
		t.Errorf("ClipVSpan(4, -5, 3) = %d, %d, %v; want 2, 3, true", y0, y1, ok)
	}
	if ec.ClampX(100) != 6 || ec.ClampX(-4) != 2 {
		t.Error("ClampX did not clamp to the inclusive range")
	}
	if !ec.Contains(6, 6) || ec.Contains(7, 6) {
		t.Error("Contains disagrees with inclusive bounds")
	}
}
