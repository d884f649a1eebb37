package design

import (
	"math"
	"testing"
)

// square returns a closed square path as four segments, drawn clockwise
// from (x1,y1).
func square(x1, y1, x2, y2 float64) []Segment {
	return []Segment{
		Seg(x1, y1, x2, y1),
		Seg(x2, y1, x2, y2),
		Seg(x2, y2, x1, y2),
		Seg(x1, y2, x1, y1),
	}
}

func TestToPathsStable(t *testing.T) {
	var d Design
	d = append(d, square(0, 0, 10, 10)...)
	d = append(d, Seg(50, 0, 60, 0), Seg(60, 0, 60, 10))
	d = append(d, square(100, 100, 110, 110)...)

	paths := ToPaths(d)
	if len(paths) != 3 {
		t.Fatalf("ToPaths returned %d paths, want 3", len(paths))
	}

	wantLens := []int{4, 2, 4}
	idx := 0
	for i, p := range paths {
		if len(p) != wantLens[i] {
			t.Fatalf("path %d has %d segments, want %d", i, len(p), wantLens[i])
		}
		for j, s := range p {
			if s != d[idx] {
				t.Errorf("path %d segment %d = %v, want %v (input order)", i, j, s, d[idx])
			}
			idx++
		}
	}
}

func TestToPathsJoinsByEitherEndpoint(t *testing.T) {
	// The second segment touches the first only via its End point.
	d := Design{Seg(0, 0, 10, 0), Seg(20, 0, 10, 0)}

	paths := ToPaths(d)
	if len(paths) != 1 {
		t.Fatalf("ToPaths returned %d paths, want 1", len(paths))
	}
	if len(paths[0]) != 2 {
		t.Errorf("path has %d segments, want 2", len(paths[0]))
	}
}

func TestToPathsEmpty(t *testing.T) {
	if paths := ToPaths(nil); len(paths) != 0 {
		t.Errorf("ToPaths(nil) = %v, want none", paths)
	}
}

func TestToPathsBranchingAssignsEverySegment(t *testing.T) {
	// Three segments meeting at (0,0). The grouping is unspecified, but
	// every segment must land in exactly one path.
	d := Design{Seg(0, 0, 10, 0), Seg(0, 0, 0, 10), Seg(0, 0, -10, 0)}

	total := 0
	for _, p := range ToPaths(d) {
		total += len(p)
	}
	if total != len(d) {
		t.Errorf("paths hold %d segments, want %d", total, len(d))
	}
}

func TestBoundingBox(t *testing.T) {
	box, err := BoundingBox(Design{Seg(10, 20, -5, 8), Seg(-5, 8, 3, 40)})
	if err != nil {
		t.Fatalf("BoundingBox: %v", err)
	}
	if box.Min != Pt(-5, 8) || box.Max != Pt(10, 40) {
		t.Errorf("box = %v, want min (-5,8) max (10,40)", box)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if _, err := BoundingBox(nil); err == nil {
		t.Fatal("BoundingBox(nil) succeeded, want error")
	}
}

func TestPathClosed(t *testing.T) {
	if !Path(square(0, 0, 10, 10)).Closed() {
		t.Error("square path should be closed")
	}
	open := Path{Seg(0, 0, 10, 0), Seg(10, 0, 10, 10)}
	if open.Closed() {
		t.Error("open path reported closed")
	}
	if Path(nil).Closed() {
		t.Error("empty path reported closed")
	}
}

func TestSubpathTruncates(t *testing.T) {
	p := Path{Seg(0, 0, 10, 0), Seg(10, 0, 10, 10)}

	sub := Subpath(p, 15)
	if len(sub) != 2 {
		t.Fatalf("Subpath returned %d segments, want 2", len(sub))
	}
	if sub[0] != p[0] {
		t.Errorf("first segment = %v, want %v", sub[0], p[0])
	}
	if sub[1].Start != Pt(10, 0) || sub[1].End != Pt(10, 5) {
		t.Errorf("truncated segment = %v, want (10,0)-(10,5)", sub[1])
	}
	if got := sub.Length(); math.Abs(got-15) > 1e-9 {
		t.Errorf("Subpath length = %g, want 15", got)
	}
}

func TestSubpathExactBoundary(t *testing.T) {
	p := Path{Seg(0, 0, 10, 0), Seg(10, 0, 10, 10)}

	sub := Subpath(p, 10)
	if len(sub) != 1 || sub[0] != p[0] {
		t.Errorf("Subpath(10) = %v, want exactly the first segment", sub)
	}
}

func TestSubpathOvershoot(t *testing.T) {
	p := Path{Seg(0, 0, 10, 0)}

	// Asking for more than the path holds returns the whole path.
	sub := Subpath(p, 100)
	if len(sub) != 1 || sub[0] != p[0] {
		t.Errorf("Subpath(100) = %v, want the whole path", sub)
	}
}

func TestSubpathZero(t *testing.T) {
	p := Path{Seg(0, 0, 10, 0)}
	if sub := Subpath(p, 0); len(sub) != 0 {
		t.Errorf("Subpath(0) = %v, want none", sub)
	}
}
