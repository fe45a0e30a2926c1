package engine

import (
	"log"

	"lifeflight/src/universe"
)

// default options
const (
	DefSpeed     = 5
	MinSpeed     = 1
	MaxSpeed     = 1000
	DefWidth     = 800
	DefHeight    = 600
	DefInboxSize = 64
)

// Options represents the Game's configurable options
type Options struct {
	Speed     int     //generations per second while playing, also the max batch size
	Scaling   float64 //initial zoom
	CellSize  float64 //cell size in the viewing area units
	Preset    string  //initial preset
	ShowLines bool
	Width     float64 //initial size of the viewing area
	Height    float64
	InboxSize int
	Logger    *log.Logger
}

var DefaultOptions = Options{
	Speed:     DefSpeed,
	Scaling:   universe.DefScaling,
	CellSize:  universe.DefCellSize,
	Preset:    universe.DefPreset,
	ShowLines: true,
	Width:     DefWidth,
	Height:    DefHeight,
	InboxSize: DefInboxSize,
}

func clampSpeed(speed int) int {
	return max(MinSpeed, min(speed, MaxSpeed))
}
