package universe

import (
	"math"
)

// Cell is a single position of the unbounded field, I is the row and J is the column
type Cell struct {
	I int
	J int
}

// Point is a position in world units (one cell spans CellSize units)
type Point struct {
	X float64
	Y float64
}

// Vector is a translation in world units
type Vector struct {
	X float64
	Y float64
}

// Size is the size of the viewing area
type Size struct {
	Width  float64
	Height float64
}

// Add returns the vector sum
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Scale returns the vector multiplied by f
func (v Vector) Scale(f float64) Vector {
	return Vector{v.X * f, v.Y * f}
}

// CellAt returns the cell which contains the point p
// cellSize is the size of the cell in world units
func CellAt(p Point, cellSize float64) Cell {
	i := toInt(math.Ceil(p.Y / cellSize))
	j := toInt(math.Ceil(p.X / cellSize))
	return Cell{I: satAdd(i, -1), J: satAdd(j, -1)}
}

// Neighbors returns the cells around c (Moore neighborhood), the cell itself is excluded
// on the edges of int range the neighborhood is cut, so a corner cell has 3 neighbors and an edge cell has 5
func (c Cell) Neighbors() []Cell {
	rows := Span{First: satAdd(c.I, -1), Last: satAdd(c.I, 1)}
	columns := Span{First: satAdd(c.J, -1), Last: satAdd(c.J, 1)}
	n := make([]Cell, 0, 8)
	for i := rows.First; ; i++ {
		for j := columns.First; ; j++ {
			if nc := (Cell{I: i, J: j}); nc != c {
				n = append(n, nc)
			}
			//the last column can be math.MaxInt, so the loop is broken before the increment
			if j == columns.Last {
				break
			}
		}
		if i == rows.Last {
			break
		}
	}
	return n
}

// Add shifts the cell by di rows and dj columns with saturation
func (c Cell) Add(di int, dj int) Cell {
	return Cell{I: satAdd(c.I, di), J: satAdd(c.J, dj)}
}

// satAdd adds two ints, the result is clamped to [math.MinInt, math.MaxInt]
func satAdd(a int, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

// toInt converts float to int clamping out of range values
func toInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}
