package universe

import "testing"

func TestRegionSpans(t *testing.T) {
	r := Region{X: 10, Y: -25, Width: 40, Height: 30}
	if got := r.Rows(20); got != (Span{-2, 0}) {
		t.Fatalf("rows %v", got)
	}
	if got := r.Columns(20); got != (Span{0, 2}) {
		t.Fatalf("columns %v", got)
	}
	if got := r.Columns(20).Len(); got != 3 {
		t.Fatalf("columns len %v", got)
	}
}

func TestRegionCull(t *testing.T) {
	r := Region{X: 10, Y: -25, Width: 40, Height: 30}
	inside := []Cell{{-2, 0}, {-2, 2}, {0, 0}, {0, 2}, {-1, 1}}
	outside := []Cell{{-3, 0}, {1, 0}, {0, -1}, {0, 3}, {-3, 3}, {100, 100}}

	cells := append(append([]Cell{}, inside...), outside...)
	sameCells(t, r.Cull(20, cells), inside)
}

func TestSpanEmpty(t *testing.T) {
	if (Span{3, 2}).Len() != 0 {
		t.Fatal("inverted span must be empty")
	}
	if (Span{3, 2}).Contains(3) {
		t.Fatal("inverted span must not contain anything")
	}
}
