package design

import (
	"errors"
	"testing"
)

func TestLinesAddRemove(t *testing.T) {
	l := NewLines()
	l.Add(Seg(0, 0, 10, 0))

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	if err := l.Remove(Pt(0, 0), Pt(10, 0)); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("after removal Len() = %d, want 0", l.Len())
	}
	if got := l.From(Pt(0, 0)); len(got) != 0 {
		t.Errorf("From(start) after removal = %v, want none", got)
	}
	if got := l.From(Pt(10, 0)); len(got) != 0 {
		t.Errorf("From(end) after removal = %v, want none", got)
	}
}

func TestLinesSymmetric(t *testing.T) {
	l := NewLines()
	l.Add(Seg(0, 0, 10, 0))

	if got := l.From(Pt(0, 0)); len(got) != 1 || got[0] != Pt(10, 0) {
		t.Errorf("From(start) = %v, want [(10,0)]", got)
	}
	if got := l.From(Pt(10, 0)); len(got) != 1 || got[0] != Pt(0, 0) {
		t.Errorf("From(end) = %v, want [(0,0)]", got)
	}

	// Removing from the reverse direction works too.
	if err := l.Remove(Pt(10, 0), Pt(0, 0)); err != nil {
		t.Fatalf("reverse Remove: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestLinesSharedEndpoint(t *testing.T) {
	l := NewLines()
	l.Add(Seg(0, 0, 10, 0))
	l.Add(Seg(10, 0, 10, 10))

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if got := l.From(Pt(10, 0)); len(got) != 2 {
		t.Fatalf("From(shared) = %v, want two endpoints", got)
	}

	if err := l.Remove(Pt(0, 0), Pt(10, 0)); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// The shared point still has one incident segment.
	if got := l.From(Pt(10, 0)); len(got) != 1 || got[0] != Pt(10, 10) {
		t.Errorf("From(shared) = %v, want [(10,10)]", got)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestLinesDegenerateIgnored(t *testing.T) {
	l := NewLines()
	l.Add(Seg(5, 5, 5, 5))
	if l.Len() != 0 {
		t.Errorf("degenerate segment was stored, Len() = %d", l.Len())
	}
	// Degenerate removal is a no-op, not a missing-segment error.
	if err := l.Remove(Pt(5, 5), Pt(5, 5)); err != nil {
		t.Errorf("degenerate Remove: %v", err)
	}
}

func TestLinesDoubleRemove(t *testing.T) {
	l := NewLines()
	l.Add(Seg(0, 0, 10, 0))

	if err := l.Remove(Pt(0, 0), Pt(10, 0)); err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	err := l.Remove(Pt(0, 0), Pt(10, 0))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Remove error = %v, want ErrNotFound", err)
	}
}

func TestLinesRemoveMissingKeepsState(t *testing.T) {
	l := NewLines()
	l.Add(Seg(0, 0, 10, 0))

	if err := l.Remove(Pt(0, 0), Pt(99, 99)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove missing = %v, want ErrNotFound", err)
	}
	// The indexed segment is untouched.
	if got := l.From(Pt(0, 0)); len(got) != 1 || got[0] != Pt(10, 0) {
		t.Errorf("From(start) after failed removal = %v, want [(10,0)]", got)
	}
}

func TestLinesPointsSorted(t *testing.T) {
	l := NewLines()
	l.Add(Seg(5, 5, 1, 1))
	l.Add(Seg(1, 1, 3, 0))

	want := []Point{Pt(1, 1), Pt(3, 0), Pt(5, 5)}
	got := l.Points()
	if len(got) != len(want) {
		t.Fatalf("Points() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
