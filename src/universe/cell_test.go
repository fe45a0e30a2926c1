package universe

import (
	"math"
	"testing"
)

func TestNeighbors(t *testing.T) {
	n := Cell{5, -5}.Neighbors()
	if len(n) != 8 {
		t.Fatalf("got %d neighbors, expected 8", len(n))
	}
	seen := map[Cell]bool{}
	for _, c := range n {
		if c == (Cell{5, -5}) {
			t.Fatal("the cell is its own neighbor")
		}
		if c.I < 4 || c.I > 6 || c.J < -6 || c.J > -4 {
			t.Fatalf("%v is not adjacent", c)
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Fatalf("neighbors are not distinct: %v", n)
	}
}

func TestNeighborsSaturate(t *testing.T) {
	tests := []struct {
		name string
		c    Cell
		want int
	}{
		{"inner", Cell{0, 0}, 8},
		{"top edge", Cell{math.MaxInt, 0}, 5},
		{"bottom edge", Cell{math.MinInt, 0}, 5},
		{"left edge", Cell{0, math.MinInt}, 5},
		{"right edge", Cell{0, math.MaxInt}, 5},
		{"corner", Cell{math.MaxInt, math.MinInt}, 3},
		{"opposite corner", Cell{math.MinInt, math.MaxInt}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.c.Neighbors()
			if len(n) != tt.want {
				t.Fatalf("got %v neighbors, expected %v: %v", len(n), tt.want, n)
			}
			seen := map[Cell]struct{}{}
			for _, c := range n {
				if c == tt.c {
					t.Fatal("the cell is its own neighbor")
				}
				if _, ok := seen[c]; ok {
					t.Fatalf("%v is listed twice", c)
				}
				seen[c] = struct{}{}
				if d := c.I - tt.c.I; d < -1 || d > 1 {
					t.Fatalf("%v wrapped around", c)
				}
				if d := c.J - tt.c.J; d < -1 || d > 1 {
					t.Fatalf("%v wrapped around", c)
				}
			}
		})
	}
}

func TestAddSaturates(t *testing.T) {
	tests := []struct {
		name   string
		c      Cell
		di, dj int
		want   Cell
	}{
		{"plain", Cell{1, 2}, 3, -4, Cell{4, -2}},
		{"max", Cell{math.MaxInt - 1, 0}, 5, 0, Cell{math.MaxInt, 0}},
		{"min", Cell{0, math.MinInt + 1}, 0, -5, Cell{0, math.MinInt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Add(tt.di, tt.dj); got != tt.want {
				t.Fatalf("got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		p    Point
		want Cell
	}{
		{Point{0.5, 0.5}, Cell{0, 0}},
		{Point{19.9, 19.9}, Cell{0, 0}},
		{Point{20.1, 0.5}, Cell{0, 1}},
		{Point{-0.5, -0.5}, Cell{-1, -1}},
		{Point{-20.5, 40.5}, Cell{2, -2}},
	}
	for _, tt := range tests {
		if got := CellAt(tt.p, 20); got != tt.want {
			t.Errorf("CellAt(%v) = %v, expected %v", tt.p, got, tt.want)
		}
	}
}
