package universe

import (
	"math"
	"sort"
	"testing"
)

func sortedCells(cells []Cell) []Cell {
	sort.Slice(cells, func(a, b int) bool {
		if cells[a].I != cells[b].I {
			return cells[a].I < cells[b].I
		}
		return cells[a].J < cells[b].J
	})
	return cells
}

func sameCells(t *testing.T, got []Cell, want []Cell) {
	t.Helper()
	got = sortedCells(append([]Cell(nil), got...))
	want = sortedCells(append([]Cell(nil), want...))
	if len(got) != len(want) {
		t.Fatalf("got %d cells %v, expected %d cells %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got cells %v, expected %v", got, want)
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	l := NewLife(Cell{3, 7})
	l.Tick()
	if l.Len() != 0 {
		t.Fatalf("isolated cell survived: %v", l.Cells())
	}
}

func TestBlockIsStill(t *testing.T) {
	block := []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	l := NewLife(block...)
	for i := 0; i < 10; i++ {
		l.Tick()
		sameCells(t, l.Cells(), block)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := []Cell{{-1, 0}, {0, 0}, {1, 0}}
	horizontal := []Cell{{0, -1}, {0, 0}, {0, 1}}
	l := NewLife(vertical...)

	l.Tick()
	sameCells(t, l.Cells(), horizontal)

	l.Tick()
	sameCells(t, l.Cells(), vertical)
}

func TestGliderMoves(t *testing.T) {
	glider := ParsePattern([]string{
		" x ",
		"  x",
		"xxx",
	})
	l := NewLife(glider...)
	for i := 0; i < 4; i++ {
		l.Tick()
	}
	moved := make([]Cell, 0, len(glider))
	for _, c := range glider {
		moved = append(moved, c.Add(1, 1))
	}
	sameCells(t, l.Cells(), moved)
}

func TestCloneIsIndependent(t *testing.T) {
	l := NewLife(Cell{0, 0}, Cell{0, 1}, Cell{0, 2})
	cl := l.Clone()
	cl.Tick()
	cl.Populate(Cell{10, 10})
	sameCells(t, l.Cells(), []Cell{{0, 0}, {0, 1}, {0, 2}})
	if !cl.Contains(Cell{10, 10}) || l.Contains(Cell{10, 10}) {
		t.Fatal("the clone shares the cells with the origin")
	}
}

func TestZeroLifePopulate(t *testing.T) {
	var l Life
	l.Populate(Cell{1, 1})
	l.Unpopulate(Cell{2, 2})
	if !l.Contains(Cell{1, 1}) || l.Len() != 1 {
		t.Fatalf("unexpected cells %v", l.Cells())
	}
}

func TestEdgeOfRange(t *testing.T) {
	t.Run("domino on the top edge dies", func(t *testing.T) {
		l := NewLife(Cell{math.MaxInt, 0}, Cell{math.MaxInt, 1})
		l.Tick()
		if l.Len() != 0 {
			t.Fatalf("domino survived: %v", l.Cells())
		}
	})
	t.Run("block in the corner is still", func(t *testing.T) {
		block := []Cell{
			{math.MaxInt, math.MaxInt}, {math.MaxInt, math.MaxInt - 1},
			{math.MaxInt - 1, math.MaxInt}, {math.MaxInt - 1, math.MaxInt - 1},
		}
		l := NewLife(block...)
		for i := 0; i < 3; i++ {
			l.Tick()
			sameCells(t, l.Cells(), block)
		}
	})
	t.Run("blinker on the bottom edge", func(t *testing.T) {
		l := NewLife(Cell{math.MinInt, -1}, Cell{math.MinInt, 0}, Cell{math.MinInt, 1})
		l.Tick()
		//the row below the edge doesn't exist, so only the upper half is born
		sameCells(t, l.Cells(), []Cell{{math.MinInt, 0}, {math.MinInt + 1, 0}})
	})
}

func BenchmarkTick(b *testing.B) {
	c := NewCatalog(DefaultNoiseOptions)
	for _, name := range []string{PresetGliderGun, PresetAcorn, PresetNoise} {
		p, _ := c.Lookup(name)
		b.Run(name, func(b *testing.B) {
			l := NewLife(p.Cells...)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Tick()
			}
		})
	}
}
