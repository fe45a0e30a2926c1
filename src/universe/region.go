package universe

import "math"

// Region is the visible part of the field in world units
type Region struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Span is an inclusive range of rows or columns
type Span struct {
	First int
	Last  int
}

// Contains reports whether v is inside the span
func (s Span) Contains(v int) bool {
	return v >= s.First && v <= s.Last
}

// Len returns the count of rows (columns) in the span
func (s Span) Len() int {
	if s.Last < s.First {
		return 0
	}
	return s.Last - s.First + 1
}

// Rows returns the rows crossed by the region
func (r Region) Rows(cellSize float64) Span {
	return span(r.Y, r.Height, cellSize)
}

// Columns returns the columns crossed by the region
func (r Region) Columns(cellSize float64) Span {
	return span(r.X, r.Width, cellSize)
}

// Cull returns the cells inside the region
func (r Region) Cull(cellSize float64, cells []Cell) []Cell {
	rows := r.Rows(cellSize)
	columns := r.Columns(cellSize)
	visible := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if rows.Contains(c.I) && columns.Contains(c.J) {
			visible = append(visible, c)
		}
	}
	return visible
}

func span(start float64, length float64, cellSize float64) Span {
	first := toInt(math.Floor(start / cellSize))
	visible := toInt(math.Ceil(length / cellSize))
	return Span{First: first, Last: satAdd(first, visible)}
}
