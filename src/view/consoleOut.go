package view

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"

	"lifeflight/src/engine"
)

const progressEvery = 10 //print the progress each progressEvery ticks

// ConsoleOut prints the progress of the headless run and reports when maxTicks generations are calculated
type ConsoleOut struct {
	game      *engine.Game
	w         io.Writer
	maxTicks  int
	startTime time.Time
	printed   int
	done      chan struct{}
	doneOnce  sync.Once
}

func NewConsoleOut(w io.Writer, maxTicks int) *ConsoleOut {
	return &ConsoleOut{w: w, maxTicks: maxTicks, done: make(chan struct{})}
}

// Done is closed when the game reaches maxTicks
func (c *ConsoleOut) Done() <-chan struct{} {
	return c.done
}

func (c *ConsoleOut) Refresh(st engine.Status) {
	if st.Ticks/progressEvery > c.printed/progressEvery {
		c.printed = st.Ticks
		fmt.Fprintf(c.w, "  Ticks done: %v, live cells: %v, tick time: %v\n",
			st.Ticks, st.CellCount, st.LastTickDuration.Round(time.Microsecond))
	} else if st.Ticks < c.printed {
		//the grid was replaced
		c.printed = st.Ticks
	}
	if c.maxTicks > 0 && st.Ticks >= c.maxTicks {
		c.doneOnce.Do(func() {
			totalTime := time.Since(c.startTime).Round(time.Millisecond)
			resultData := map[string]interface{}{
				"Ticks":      st.Ticks,
				"Total time": totalTime,
				"Live cells": st.CellCount,
			}
			fmt.Fprintln(c.w, aurora.Colorize("\nFinished:", aurora.GreenFg))
			c.printHashData(resultData)
			close(c.done)
		})
	}
}

func (c *ConsoleOut) Register(g *engine.Game) {
	c.game = g
	o := c.game.Options()
	fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Preset":    o.Preset,
		"Speed":     o.Speed,
		"Max ticks": c.maxTicks,
		"View":      fmt.Sprintf("%v x %v", o.Width, o.Height),
	})
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
