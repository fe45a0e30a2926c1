package engine

import (
	"io"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"lifeflight/src/universe"
)

// Status represents the state of the Game at concrete moment
type Status struct {
	universe.Frame
	Playing    bool
	Speed      int
	Generation int //grid version, changed on clear and preset load
	Ticks      int //generations calculated since the last grid replacement
}

// Viewer is the interface to any Viewer - the object who can display the Game or control it
type Viewer interface {
	Refresh(st Status)
	Register(g *Game)
	Start()
}

// Game owns the Grid and processes all messages in one goroutine
// the generations are calculated by the Worker, the playback is paced by the Looper
type Game struct {
	options     Options
	grid        *universe.Grid
	presets     universe.PresetSource
	playing     bool
	queuedTicks int
	speed       int
	generation  int
	ticks       int

	worker     *Worker
	dispatcher dispatcher
	looper     *Looper
	views      []Viewer
	logger     *log.Logger

	inbox    chan Message
	quit     chan struct{}
	loopDone chan struct{}
	started  bool
	group    errgroup.Group
	stopOnce sync.Once
}

// New creates the Game instance, call Start to run it
func New(o *Options, presets universe.PresetSource) *Game {
	if o == nil {
		o = &DefaultOptions
	}
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	inboxSize := o.InboxSize
	if inboxSize <= 0 {
		inboxSize = DefInboxSize
	}

	g := &Game{
		options: *o,
		presets: presets,
		speed:   clampSpeed(o.Speed),
		logger:  logger,
		inbox:   make(chan Message, inboxSize),
		quit:    make(chan struct{}),

		loopDone: make(chan struct{}),
	}
	g.options.Logger = logger
	p, ok := presets.Lookup(o.Preset)
	if !ok {
		logger.Printf("unknown preset %q, starting with the empty grid", o.Preset)
		p = universe.Preset{Name: universe.PresetCustom}
	}
	g.grid = universe.NewGrid(p, o.Scaling, o.CellSize)
	g.grid.ToggleLines(o.ShowLines)
	g.grid.Resize(universe.Size{Width: o.Width, Height: o.Height})

	g.worker = NewWorker(g.Send, logger)
	g.dispatcher = g.worker
	g.looper = NewLooper(g.Send)
	return g
}

// RegisterViewer registers the viewer - the game will call the viewer after each processed message
// should be called before Start
func (g *Game) RegisterViewer(v Viewer) {
	g.views = append(g.views, v)
	v.Register(g)
}

// Options returns the Game configuration
// the returned Logger is never nil
func (g *Game) Options() Options {
	return g.options
}

// Presets returns the names of the available presets
func (g *Game) Presets() []string {
	return g.presets.Names()
}

// Start runs the worker, the looper and the main loop, returns immediately
func (g *Game) Start() {
	g.started = true
	g.group.Go(g.worker.Run)
	g.group.Go(g.looper.Run)
	g.group.Go(g.mainLoop)
}

// Send puts the message to the Game inbox, safe for concurrent use
// the message is dropped after Stop
func (g *Game) Send(m Message) {
	select {
	case g.inbox <- m:
	case <-g.quit:
	}
}

// Stop stops the worker and the looper and waits until all goroutines are finished
// the in-flight calculation is not interrupted, Stop waits for it
func (g *Game) Stop() error {
	g.stopOnce.Do(func() {
		close(g.quit)
		//nothing is submitted to the worker after the main loop is finished
		if g.started {
			<-g.loopDone
		}
		g.worker.Stop()
		g.looper.Stop()
	})
	return g.group.Wait()
}

// mainLoop - the main cycle, waits for a message and executes
func (g *Game) mainLoop() error {
	defer close(g.loopDone)
	g.refreshView()
	for {
		select {
		case m := <-g.inbox:
			g.Update(m)
			g.refreshView()
		case <-g.quit:
			return nil
		}
	}
}

// Update applies the message, must be called from the owning goroutine only
// the ticks queued during a calculation are dispatched right after the merge, not on the next TickRequested
func (g *Game) Update(m Message) {
	switch m := m.(type) {
	case GridEdit:
		if m.Generation != g.generation {
			//the grid was replaced after the message was created
			return
		}
		g.grid.Update(m.Message)
		if _, ok := m.Message.(universe.Ticked); ok {
			g.ticks += g.grid.LastQueuedTicks()
			//the ticks requested during the calculation are sent as one batch
			if g.queuedTicks > 0 {
				g.dispatch()
			}
		}
	case TickRequested, Next:
		g.queuedTicks = min(g.queuedTicks+1, g.speed)
		g.dispatch()
	case TogglePlayback:
		g.playing = !g.playing
		g.updateLooperState()
	case SetGridLinesVisible:
		g.grid.ToggleLines(m.Visible)
	case Clear:
		g.grid.Clear()
		g.generation++
		g.ticks = 0
	case SpeedChanged:
		g.speed = clampSpeed(m.Speed)
		g.queuedTicks = min(g.queuedTicks, g.speed)
		if g.playing {
			g.updateLooperState()
		}
	case PresetSelected:
		p, ok := g.presets.Lookup(m.Name)
		if !ok {
			g.logger.Printf("unknown preset %q", m.Name)
			return
		}
		g.grid.Load(p)
		g.generation++
		g.ticks = 0
	case Resized:
		g.grid.Resize(universe.Size{Width: m.Width, Height: m.Height})
	}
}

// dispatch sends the queued ticks to the worker if the grid is not ticking already
func (g *Game) dispatch() {
	tick, ok := g.grid.Tick(g.queuedTicks)
	if !ok {
		return
	}
	g.queuedTicks = 0
	generation := g.generation
	g.dispatcher.Submit(func() Message {
		return GridEdit{Message: tick(), Generation: generation}
	})
}

func (g *Game) updateLooperState() {
	if g.playing {
		g.looper.Set(LooperState{Mode: LooperRunning, Speed: g.speed})
	} else {
		g.looper.Set(LooperState{Mode: LooperPaused})
	}
}

// Status returns the current Game status, must be called from the owning goroutine only
func (g *Game) Status() Status {
	return Status{
		Frame:      g.grid.Frame(),
		Playing:    g.playing,
		Speed:      g.speed,
		Generation: g.generation,
		Ticks:      g.ticks,
	}
}

// refreshView calls Refresh event for all registered views
func (g *Game) refreshView() {
	if len(g.views) == 0 {
		return
	}
	st := g.Status()
	for _, v := range g.views {
		v.Refresh(st)
	}
}
