package universe

// Life is the set of alive cells
// only the cells near the life are visited on each tick, so the tick cost depends on the population, not on the field size
type Life struct {
	cells map[Cell]struct{}
}

// NewLife creates the Life populated with cells
func NewLife(cells ...Cell) Life {
	l := Life{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		l.cells[c] = struct{}{}
	}
	return l
}

// Len returns the count of alive cells
func (l Life) Len() int {
	return len(l.cells)
}

// Contains reports whether the cell is alive
func (l Life) Contains(c Cell) bool {
	_, ok := l.cells[c]
	return ok
}

// Populate makes the cell alive
func (l *Life) Populate(c Cell) {
	if l.cells == nil {
		l.cells = make(map[Cell]struct{})
	}
	l.cells[c] = struct{}{}
}

// Unpopulate kills the cell
func (l *Life) Unpopulate(c Cell) {
	delete(l.cells, c)
}

// Each calls cb for each alive cell, the order is not defined
func (l Life) Each(cb func(c Cell)) {
	for c := range l.cells {
		cb(c)
	}
}

// Cells returns the alive cells as a new slice
func (l Life) Cells() []Cell {
	cells := make([]Cell, 0, len(l.cells))
	for c := range l.cells {
		cells = append(cells, c)
	}
	return cells
}

// Clone returns the deep copy, the copy can be ticked in other goroutine
func (l Life) Clone() Life {
	cl := Life{cells: make(map[Cell]struct{}, len(l.cells))}
	for c := range l.cells {
		cl.cells[c] = struct{}{}
	}
	return cl
}

// Tick calculates the next generation
func (l *Life) Tick() {
	adjacent := make(map[Cell]int, len(l.cells)*4)

	for c := range l.cells {
		//the isolated cell must be visited too
		if _, ok := adjacent[c]; !ok {
			adjacent[c] = 0
		}
		for _, n := range c.Neighbors() {
			adjacent[n]++
		}
	}

	for c, amount := range adjacent {
		switch amount {
		case 2:
		case 3:
			l.Populate(c)
		default:
			l.Unpopulate(c)
		}
	}
}
