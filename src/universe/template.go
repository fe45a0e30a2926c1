package universe

import (
	"sort"
	"strings"

	"github.com/aquilax/go-perlin"
)

// preset names
const (
	PresetCustom               = "custom"
	PresetXkcd                 = "xkcd"
	PresetGlider               = "glider"
	PresetSmallExploder        = "small-exploder"
	PresetExploder             = "exploder"
	PresetTenCellRow           = "ten-cell-row"
	PresetLightweightSpaceship = "lightweight-spaceship"
	PresetTumbler              = "tumbler"
	PresetGliderGun            = "glider-gun"
	PresetAcorn                = "acorn"
	PresetNoise                = "noise"

	DefPreset = PresetXkcd
)

// noise preset defaults
const (
	DefNoiseSize      = 64
	DefNoiseSeed      = 42
	DefNoiseThreshold = 0.1
	noiseAlpha        = 2
	noiseBeta         = 2
	noiseOctaves      = 3
	noiseFrequency    = 0.1
)

// Preset is the seeding template which is used to settle the grid with predefined data
type Preset struct {
	Name  string //preset name
	Descr string //preset descr
	Cells []Cell
}

// PresetSource looks up the presets by name
type PresetSource interface {
	Lookup(name string) (Preset, bool)
	Names() []string
}

// Catalog is the in-memory PresetSource
type Catalog struct {
	presets map[string]Preset
}

// NoiseOptions configures the noise preset
type NoiseOptions struct {
	Size      int
	Seed      int64
	Threshold float64
}

// DefaultNoiseOptions is used by NewCatalog
var DefaultNoiseOptions = NoiseOptions{
	Size:      DefNoiseSize,
	Seed:      DefNoiseSeed,
	Threshold: DefNoiseThreshold,
}

var patterns = []struct {
	name  string
	descr string
	rows  []string
}{
	{PresetXkcd, "the xkcd #2293 pattern", []string{
		"  xxx  ",
		"  x x  ",
		"  x x  ",
		"   x   ",
		"x xxx  ",
		" x x x ",
		"   x  x",
		"  x x  ",
		"  x x  ",
	}},
	{PresetGlider, "the smallest spaceship", []string{
		" x ",
		"  x",
		"xxx",
	}},
	{PresetSmallExploder, "the small exploder", []string{
		" x ",
		"xxx",
		"x x",
		" x ",
	}},
	{PresetExploder, "the exploder", []string{
		"x x x",
		"x   x",
		"x   x",
		"x   x",
		"x x x",
	}},
	{PresetTenCellRow, "ten cells in a row", []string{
		"xxxxxxxxxx",
	}},
	{PresetLightweightSpaceship, "the lightweight spaceship", []string{
		" xxxxx",
		"x    x",
		"     x",
		"x   x ",
	}},
	{PresetTumbler, "the tumbler oscillator", []string{
		" xx xx ",
		" xx xx ",
		"  x x  ",
		"x x x x",
		"x x x x",
		"xx   xx",
	}},
	{PresetGliderGun, "the Gosper glider gun", []string{
		"                        x           ",
		"                      x x           ",
		"            xx      xx            xx",
		"           x   x    xx            xx",
		"xx        x     x   xx              ",
		"xx        x   x xx    x x           ",
		"          x     x       x           ",
		"           x   x                    ",
		"            xx                      ",
	}},
	{PresetAcorn, "the methuselah acorn", []string{
		" x     ",
		"   x   ",
		"xx  xxx",
	}},
}

// NewCatalog creates the Catalog with the built-in presets
func NewCatalog(no NoiseOptions) *Catalog {
	c := &Catalog{presets: map[string]Preset{}}
	c.Add(Preset{Name: PresetCustom, Descr: "the empty grid"})
	for _, p := range patterns {
		c.Add(Preset{Name: p.name, Descr: p.descr, Cells: ParsePattern(p.rows)})
	}
	c.Add(NoisePreset(no))
	return c
}

// Add adds the preset to the catalog, the preset with the same name is replaced
func (c *Catalog) Add(p Preset) {
	c.presets[p.Name] = p
}

// Lookup returns the preset by name
func (c *Catalog) Lookup(name string) (Preset, bool) {
	p, ok := c.presets[strings.ToLower(name)]
	return p, ok
}

// Names returns the sorted preset names
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.presets))
	for k := range c.presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ParsePattern converts the text pattern to the cells, any non space char is the alive cell
// the pattern is centered around the origin
func ParsePattern(rows []string) []Cell {
	cells := []Cell{}
	startRow := -(len(rows) / 2)
	for i, row := range rows {
		startColumn := -(len(row) / 2)
		for j, ch := range row {
			if ch == ' ' || ch == '\t' {
				continue
			}
			cells = append(cells, Cell{I: startRow + i, J: startColumn + j})
		}
	}
	return cells
}

// NoisePreset creates the Size x Size soup from the perlin noise
// the same options produce the same cells
func NoisePreset(o NoiseOptions) Preset {
	if o.Size <= 0 {
		o.Size = DefNoiseSize
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, o.Seed)
	cells := []Cell{}
	start := -(o.Size / 2)
	for i := 0; i < o.Size; i++ {
		for j := 0; j < o.Size; j++ {
			if p.Noise2D(float64(i)*noiseFrequency, float64(j)*noiseFrequency) > o.Threshold {
				cells = append(cells, Cell{I: start + i, J: start + j})
			}
		}
	}
	return Preset{Name: PresetNoise, Descr: "the perlin noise soup", Cells: cells}
}
