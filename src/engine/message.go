package engine

import "lifeflight/src/universe"

// Message is anything the Game can receive
type Message interface {
	isMessage()
}

// GridEdit carries the Grid message, it is applied only if Generation matches the current one
type GridEdit struct {
	Message    universe.Message
	Generation int
}

// TickRequested asks for one more generation, sent by the Looper
type TickRequested struct{}

// Next is the manual single step
type Next struct{}

// TogglePlayback switches between playing and paused
type TogglePlayback struct{}

// SetGridLinesVisible shows or hides the grid lines
type SetGridLinesVisible struct {
	Visible bool
}

// Clear kills all cells
type Clear struct{}

// SpeedChanged sets the count of generations per second
type SpeedChanged struct {
	Speed int
}

// PresetSelected replaces the grid with the named preset
type PresetSelected struct {
	Name string
}

// Resized sets the size of the viewing area
type Resized struct {
	Width  float64
	Height float64
}

func (GridEdit) isMessage()            {}
func (TickRequested) isMessage()       {}
func (Next) isMessage()                {}
func (TogglePlayback) isMessage()      {}
func (SetGridLinesVisible) isMessage() {}
func (Clear) isMessage()               {}
func (SpeedChanged) isMessage()        {}
func (PresetSelected) isMessage()      {}
func (Resized) isMessage()             {}
