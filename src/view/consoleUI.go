package view

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifeflight/src/engine"
	"lifeflight/src/universe"
)

const (
	panStep     = 4    //chars per arrow key press
	zoomFactor  = 1.25 //scaling multiplier per zoom key press
	speedFactor = 2
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	game *engine.Game
	g    *gocui.Gui
	k    []keyBindings

	liveFiller string
	deadFiller string
	lineFiller string

	mu        sync.Mutex
	st        engine.Status
	alive     map[universe.Cell]struct{}
	aliveFrom uint64 //LifeStamp of the status the alive set was built from
	drawn     struct {
		life  uint64
		lines uint64
		valid bool
	}
	width  int
	height int
	preset int
}

var (
	playbackDescr = map[bool]string{
		false: aurora.Colorize("paused", aurora.BlueFg).String(),
		true:  aurora.Colorize("running", aurora.CyanFg).String(),
	}
)

// NewConsoleUI creates the terminal viewer, it owns the terminal until Start returns
func NewConsoleUI() (*ConsoleUI, error) {
	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: " ",
		lineFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Play/Pause", t.cmdTogglePlayback, ""},
		{'n', "N", "Next", t.cmdNext, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'g', "G", "Grid lines", t.cmdToggleLines, ""},
		{'p', "P", "Next preset", t.cmdNextPreset, ""},
		{'+', "+", "Faster", t.cmdFaster, ""},
		{'-', "-", "Slower", t.cmdSlower, ""},
		{']', "]", "Zoom in", t.cmdZoomIn, ""},
		{'[', "[", "Zoom out", t.cmdZoomOut, ""},
		{gocui.KeyArrowLeft, "←", "", t.panCmd(1, 0), ""},
		{gocui.KeyArrowRight, "→", "", t.panCmd(-1, 0), ""},
		{gocui.KeyArrowUp, "↑", "", t.panCmd(0, 1), ""},
		{gocui.KeyArrowDown, "↓", "Pan", t.panCmd(0, -1), ""},
		{gocui.MouseLeft, "MOUSE", "Settle/kill the cell", t.cmdMouseClick, "battlefield"},
		{gocui.MouseWheelUp, "WHEEL", "Zoom", t.cmdZoomIn, "battlefield"},
		{gocui.MouseWheelDown, "", "", t.cmdZoomOut, "battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return fmt.Errorf("key binding %s: %w", kb.name, err)
		}
	}
	return nil
}

func (t *ConsoleUI) Register(g *engine.Game) {
	t.game = g
	for i, name := range g.Presets() {
		if name == g.Options().Preset {
			t.preset = i
		}
	}
}

// Start runs the terminal main loop, returns when the user quits
func (t *ConsoleUI) Start() {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		t.logger().Panicln(err)
	}
}

// logger returns the game logger, so the failure goes to the --log file in the interactive mode
func (t *ConsoleUI) logger() *log.Logger {
	if t.game != nil {
		if l := t.game.Options().Logger; l != nil {
			return l
		}
	}
	return log.Default()
}

// Refresh is called from the game goroutine
func (t *ConsoleUI) Refresh(st engine.Status) {
	t.mu.Lock()
	t.st = st
	t.mu.Unlock()

	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		t.renderField()
		t.renderConfiguration()
		t.renderStatus()
		return nil
	})
}

func (t *ConsoleUI) status() engine.Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st
}

// isAlive reports whether the cell is alive in the last received status
func (t *ConsoleUI) isAlive(c universe.Cell) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.alive == nil || t.aliveFrom != t.st.LifeStamp {
		t.alive = make(map[universe.Cell]struct{}, len(t.st.Cells))
		for _, cell := range t.st.Cells {
			t.alive[cell] = struct{}{}
		}
		t.aliveFrom = t.st.LifeStamp
	}
	_, ok := t.alive[c]
	return ok
}

// renderField draws the battlefield, the drawing is skipped if the status stamps are not changed
func (t *ConsoleUI) renderField() {
	v, e := t.g.View("battlefield")
	if e != nil {
		return
	}
	st := t.status()
	if t.drawn.valid && t.drawn.life == st.LifeStamp && t.drawn.lines == st.LinesStamp {
		return
	}
	maxW, maxH := v.Size()
	if float64(maxW) != st.Bounds.Width || float64(maxH) != st.Bounds.Height {
		//the game doesn't know the new size yet, wait for the next status
		return
	}

	v.Clear()
	var b bytes.Buffer
	for y := 0; y < maxH; y++ {
		//line feed char
		if y != 0 {
			b.WriteByte(10)
		}
		for x := 0; x < maxW; x++ {
			c := st.CellAt(universe.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			switch {
			case t.isAlive(c):
				b.WriteString(t.liveFiller)
			case st.ShowLines && (c.I+c.J)%2 == 0:
				b.WriteString(t.lineFiller)
			default:
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
	t.drawn.life, t.drawn.lines, t.drawn.valid = st.LifeStamp, st.LinesStamp, true
}

func (t *ConsoleUI) renderStatus() {
	s := t.status()
	if v, e := t.g.View("status"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
		_, _ = fmt.Fprintln(v, t.renderProp("Ticks", "%v", s.Ticks))
		_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.CellCount))
		_, _ = fmt.Fprintln(v, t.renderProp("Tick time", "%v (%v)", s.LastTickDuration.Round(time.Microsecond), s.LastQueuedTicks))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", playbackDescr[s.Playing]))
	}
}

func (t *ConsoleUI) renderConfiguration() {
	s := t.status()
	if v, e := t.g.View("configuration"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Preset", "%v", s.Preset))
		_, _ = fmt.Fprintln(v, t.renderProp("Speed", "x%v", s.Speed))
		_, _ = fmt.Fprintln(v, t.renderProp("Zoom", "x%.1f", s.Scaling))
		_, _ = fmt.Fprintln(v, t.renderProp("Grid", "%v", s.LinesEnabled))
		_, _ = fmt.Fprintln(v, t.renderProp("View", "%v x %v", s.Columns.Len(), s.Rows.Len()))
	}
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		t.drawn.valid = false
		return nil
	}
	if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5)
	if err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
	}
	t.resize(v)
	t.renderField()

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.descr == "" {
				b.WriteString(" ")
				b.WriteString(aurora.Green(k.name).String())
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

// resize reports the new battlefield size to the game
func (t *ConsoleUI) resize(v *gocui.View) {
	w, h := v.Size()
	if w == t.width && h == t.height {
		return
	}
	t.width, t.height = w, h
	t.drawn.valid = false
	t.game.Send(engine.Resized{Width: float64(w), Height: float64(h)})
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if errors.Is(err, gocui.ErrUnknownView) && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) edit(m universe.Message) {
	t.game.Send(engine.GridEdit{Message: m, Generation: t.status().Generation})
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdTogglePlayback(_ *gocui.View) error {
	t.game.Send(engine.TogglePlayback{})
	return nil
}

func (t *ConsoleUI) cmdNext(_ *gocui.View) error {
	t.game.Send(engine.Next{})
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.game.Send(engine.Clear{})
	return nil
}

func (t *ConsoleUI) cmdToggleLines(_ *gocui.View) error {
	t.game.Send(engine.SetGridLinesVisible{Visible: !t.status().LinesEnabled})
	return nil
}

func (t *ConsoleUI) cmdNextPreset(_ *gocui.View) error {
	names := t.game.Presets()
	if len(names) == 0 {
		return nil
	}
	t.preset = (t.preset + 1) % len(names)
	t.game.Send(engine.PresetSelected{Name: names[t.preset]})
	return nil
}

func (t *ConsoleUI) cmdFaster(_ *gocui.View) error {
	t.game.Send(engine.SpeedChanged{Speed: t.status().Speed * speedFactor})
	return nil
}

func (t *ConsoleUI) cmdSlower(_ *gocui.View) error {
	t.game.Send(engine.SpeedChanged{Speed: t.status().Speed / speedFactor})
	return nil
}

func (t *ConsoleUI) cmdZoomIn(_ *gocui.View) error {
	t.edit(universe.Scaled{Scaling: t.status().Scaling * zoomFactor})
	return nil
}

func (t *ConsoleUI) cmdZoomOut(_ *gocui.View) error {
	t.edit(universe.Scaled{Scaling: t.status().Scaling / zoomFactor})
	return nil
}

// panCmd moves the view by panStep chars in the direction dx, dy
func (t *ConsoleUI) panCmd(dx float64, dy float64) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		st := t.status()
		delta := universe.Vector{X: dx, Y: dy}.Scale(panStep / st.Scaling)
		t.edit(universe.Translated{Translation: st.Translation.Add(delta)})
		return nil
	}
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	st := t.status()
	c := st.CellAt(universe.Point{X: float64(cx) + 0.5, Y: float64(cy) + 0.5})
	if t.isAlive(c) {
		t.edit(universe.Unpopulate{Cell: c})
	} else {
		t.edit(universe.Populate{Cell: c})
	}
	return nil
}
