package universe

import (
	"time"
)

const (
	MinScaling      = 0.1
	MaxScaling      = 2.0
	DefScaling      = 0.5
	DefCellSize     = 20
	MinLinesScaling = 0.2 //the grid lines are not drawn below this scaling
)

// Message is the change request for the Grid
type Message interface {
	isGridMessage()
}

// Populate settles the cell
type Populate struct {
	Cell Cell
}

// Unpopulate kills the cell
type Unpopulate struct {
	Cell Cell
}

// Translated moves the view
type Translated struct {
	Translation Vector
}

// Scaled zooms the view, Translation is optional and used to keep the point under the cursor in place
type Scaled struct {
	Scaling     float64
	Translation *Vector
}

// Ticked carries the calculated life back to the grid
type Ticked struct {
	Life         Life
	TickDuration time.Duration //average duration of one tick
}

func (Populate) isGridMessage()   {}
func (Unpopulate) isGridMessage() {}
func (Translated) isGridMessage() {}
func (Scaled) isGridMessage()     {}
func (Ticked) isGridMessage()     {}

// Frame is what the renderer gets to draw the grid
type Frame struct {
	Bounds      Size
	Region      Region
	Rows        Span
	Columns     Span
	Cells       []Cell //alive and staged cells inside Region
	Scaling     float64
	Translation Vector
	CellSize    float64
	ShowLines   bool //the lines are enabled and the scaling is large enough to draw them
	//LinesEnabled is the user setting
	LinesEnabled bool
	//the stamps are changed each time the cached drawing becomes stale
	LifeStamp  uint64
	LinesStamp uint64

	CellCount        int
	LastTickDuration time.Duration
	LastQueuedTicks  int
	Preset           string
}

// cache remembers the culled cells until something visible is changed
type cache struct {
	stamp uint64
	valid bool
	cells []Cell
}

func (c *cache) clear() {
	c.stamp++
	c.valid = false
	c.cells = nil
}

// Grid is the simulation controller: it keeps the State, the view position and the drawing caches
// must be used from one goroutine only
type Grid struct {
	state       *State
	preset      string
	lifeCache   cache
	linesCache  cache
	bounds      Size
	translation Vector
	scaling     float64
	cellSize    float64
	showLines   bool

	lastTickDuration time.Duration
	lastQueuedTicks  int
}

// NewGrid creates the Grid settled with the preset cells
func NewGrid(p Preset, scaling float64, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefCellSize
	}
	g := &Grid{
		scaling:   clampScaling(scaling),
		cellSize:  cellSize,
		showLines: true,
	}
	g.Load(p)
	return g
}

// Load replaces the life with the preset cells and moves the view to the origin
// an unmerged calculation is forgotten
func (g *Grid) Load(p Preset) {
	g.state = NewState(NewLife(p.Cells...))
	g.preset = p.Name
	g.translation = Vector{}
	g.lifeCache.clear()
	g.linesCache.clear()
}

// Tick starts the calculation of amount generations
// returns false if the previous calculation is not merged yet
// the returned func can be called from any goroutine, its result must be passed back to Update
func (g *Grid) Tick(amount int) (func() Message, bool) {
	tick, ok := g.state.BeginTick(amount)
	if !ok {
		return nil, false
	}
	g.lastQueuedTicks = amount
	return func() Message {
		start := time.Now()
		life := tick()
		d := time.Since(start)
		if amount > 0 {
			d /= time.Duration(amount)
		}
		return Ticked{Life: life, TickDuration: d}
	}, true
}

// Update applies the message
func (g *Grid) Update(m Message) {
	switch m := m.(type) {
	case Populate:
		g.state.Populate(m.Cell)
		g.lifeCache.clear()
		g.preset = PresetCustom
	case Unpopulate:
		g.state.Unpopulate(m.Cell)
		g.lifeCache.clear()
		g.preset = PresetCustom
	case Translated:
		g.translation = m.Translation
		g.lifeCache.clear()
		g.linesCache.clear()
	case Scaled:
		g.scaling = clampScaling(m.Scaling)
		if m.Translation != nil {
			g.translation = *m.Translation
		}
		g.lifeCache.clear()
		g.linesCache.clear()
	case Ticked:
		g.state.Merge(m.Life)
		g.lifeCache.clear()
		g.lastTickDuration = m.TickDuration
	}
}

// Clear kills all cells, an unmerged calculation is forgotten
func (g *Grid) Clear() {
	g.state = NewState(NewLife())
	g.preset = PresetCustom
	g.lifeCache.clear()
}

// Ticking reports whether a calculation is in flight
func (g *Grid) Ticking() bool {
	return g.state.Ticking()
}

// Contains reports whether the cell is alive (or staged)
func (g *Grid) Contains(c Cell) bool {
	return g.state.Contains(c)
}

// Cells returns all alive and staged cells
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.state.Len())
	g.state.Each(func(c Cell) {
		cells = append(cells, c)
	})
	return cells
}

// CellCount returns the count of alive and staged cells
func (g *Grid) CellCount() int {
	return g.state.Len()
}

func (g *Grid) Preset() string {
	return g.preset
}

func (g *Grid) ToggleLines(enabled bool) {
	if g.showLines != enabled {
		g.showLines = enabled
		g.linesCache.clear()
	}
}

func (g *Grid) LinesVisible() bool {
	return g.showLines
}

func (g *Grid) Scaling() float64 {
	return g.scaling
}

func (g *Grid) Translation() Vector {
	return g.translation
}

func (g *Grid) CellSize() float64 {
	return g.cellSize
}

func (g *Grid) LastTickDuration() time.Duration {
	return g.lastTickDuration
}

func (g *Grid) LastQueuedTicks() int {
	return g.lastQueuedTicks
}

// Resize sets the size of the viewing area
func (g *Grid) Resize(bounds Size) {
	if g.bounds == bounds {
		return
	}
	g.bounds = bounds
	g.lifeCache.clear()
	g.linesCache.clear()
}

// VisibleRegion returns the part of the field visible in the viewing area
func (g *Grid) VisibleRegion() Region {
	width := g.bounds.Width / g.scaling
	height := g.bounds.Height / g.scaling
	return Region{
		X:      -g.translation.X - width/2,
		Y:      -g.translation.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Project converts the position inside the viewing area to the world position
func (g *Grid) Project(p Point) Point {
	return project(p, g.VisibleRegion(), g.scaling)
}

// CellAt returns the cell under the position inside the viewing area
func (g *Grid) CellAt(p Point) Cell {
	return CellAt(g.Project(p), g.cellSize)
}

// Frame returns the data to draw the visible part of the grid
// the culled cells are cached until the life or the view is changed
func (g *Grid) Frame() Frame {
	region := g.VisibleRegion()
	if !g.lifeCache.valid {
		g.lifeCache.cells = region.Cull(g.cellSize, g.Cells())
		g.lifeCache.valid = true
	}
	return Frame{
		Bounds:           g.bounds,
		Region:           region,
		Rows:             region.Rows(g.cellSize),
		Columns:          region.Columns(g.cellSize),
		Cells:            g.lifeCache.cells,
		Scaling:          g.scaling,
		Translation:      g.translation,
		CellSize:         g.cellSize,
		ShowLines:        g.showLines && g.scaling >= MinLinesScaling,
		LinesEnabled:     g.showLines,
		LifeStamp:        g.lifeCache.stamp,
		LinesStamp:       g.linesCache.stamp,
		CellCount:        g.state.Len(),
		LastTickDuration: g.lastTickDuration,
		LastQueuedTicks:  g.lastQueuedTicks,
		Preset:           g.preset,
	}
}

// Project converts the position inside the viewing area to the world position
func (f Frame) Project(p Point) Point {
	return project(p, f.Region, f.Scaling)
}

// CellAt returns the cell under the position inside the viewing area
func (f Frame) CellAt(p Point) Cell {
	return CellAt(f.Project(p), f.CellSize)
}

func project(p Point, r Region, scaling float64) Point {
	return Point{
		X: p.X/scaling + r.X,
		Y: p.Y/scaling + r.Y,
	}
}

func clampScaling(s float64) float64 {
	if s < MinScaling {
		return MinScaling
	}
	if s > MaxScaling {
		return MaxScaling
	}
	return s
}
