package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/integrii/flaggy"

	"lifeflight/src/engine"
	"lifeflight/src/universe"
	"lifeflight/src/view"
)

const (
	DefMaxTicks = 1000
	//the terminal draws one char per cell
	terminalCellSize = 1
	terminalScaling  = 1
)

type EnvOptions struct {
	interactive bool
	maxTicks    int
	logFile     string
	noLines     bool
	zoom        float64
}

func main() {
	eo, o, no := initOptions()

	catalog := universe.NewCatalog(*no)
	if _, ok := catalog.Lookup(o.Preset); !ok {
		flaggy.ShowHelpAndExit("unknown preset")
	}

	logger, closeLog, err := newLogger(eo)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	o.Logger = logger

	if eo.interactive {
		err = runInteractive(o, catalog)
	} else {
		err = runHeadless(eo, o, catalog)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runInteractive(o *engine.Options, catalog *universe.Catalog) error {
	o.CellSize = terminalCellSize
	g := engine.New(o, catalog)
	v, err := view.NewConsoleUI()
	if err != nil {
		return err
	}
	g.RegisterViewer(v)
	g.Start()
	v.Start()
	if err := g.Stop(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runHeadless(eo *EnvOptions, o *engine.Options, catalog *universe.Catalog) error {
	g := engine.New(o, catalog)
	out := view.NewConsoleOut(os.Stdout, eo.maxTicks)
	g.RegisterViewer(out)
	out.Start()
	g.Start()
	g.Send(engine.TogglePlayback{})
	<-out.Done()
	if err := g.Stop(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newLogger writes to stderr in the headless mode, the terminal UI logs only to the file
func newLogger(eo *EnvOptions) (*log.Logger, func(), error) {
	if eo.logFile != "" {
		f, err := os.OpenFile(eo.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return log.New(f, "lifeflight ", log.LstdFlags), func() { _ = f.Close() }, nil
	}
	if eo.interactive {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	return log.New(os.Stderr, "lifeflight ", log.LstdFlags), func() {}, nil
}

func initOptions() (eo *EnvOptions, o *engine.Options, no *universe.NoiseOptions) {
	opts := engine.DefaultOptions
	o = &opts
	noise := universe.DefaultNoiseOptions
	no = &noise
	eo = &EnvOptions{maxTicks: DefMaxTicks}

	presetNames := universe.NewCatalog(universe.NoiseOptions{Size: 1}).Names()

	flaggy.SetName("lifeflight")
	flaggy.SetDescription("\"The Life\" game simulation")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.Speed, "s", "speed", "Generations per second while playing (1..1000)")
	flaggy.Float64(&eo.zoom, "z", "zoom", "Initial zoom (0.1..2.0)")
	flaggy.String(&o.Preset, "p", "preset", "Preset to start with ["+strings.Join(presetNames, "|")+"]")
	flaggy.Float64(&o.Width, "W", "width", "Width of the viewing area (headless mode)")
	flaggy.Float64(&o.Height, "H", "height", "Height of the viewing area (headless mode)")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Int(&eo.maxTicks, "t", "maxTicks", "Stop the headless run after maxTicks generations")
	flaggy.String(&eo.logFile, "l", "log", "Write the log to the file")
	flaggy.Bool(&eo.noLines, "", "noLines", "Hide the grid lines")
	flaggy.Int64(&no.Seed, "", "noiseSeed", "Seed of the noise preset")
	flaggy.Int(&no.Size, "", "noiseSize", "Size of the noise preset")
	flaggy.Float64(&no.Threshold, "", "noiseThreshold", "Noise level above which the cell is alive (-1..1)")

	flaggy.Parse()

	if o.Speed < engine.MinSpeed || o.Speed > engine.MaxSpeed {
		flaggy.ShowHelpAndExit("speed is out of range")
	}
	if !eo.interactive && eo.maxTicks <= 0 {
		flaggy.ShowHelpAndExit("maxTicks must be positive in the headless mode")
	}
	o.ShowLines = !eo.noLines
	switch {
	case eo.zoom != 0:
		o.Scaling = eo.zoom
	case eo.interactive:
		o.Scaling = terminalScaling
	}

	return
}
