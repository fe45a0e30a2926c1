package main

import (
	"sort"
	"testing"

	"lifeflight/src/engine"
	"lifeflight/src/universe"
)

const benchTicks = 50

// statusWaiter passes the statuses to the benchmark loop
type statusWaiter struct {
	ch chan engine.Status
}

func (s *statusWaiter) Refresh(st engine.Status) {
	select {
	case s.ch <- st:
	default:
	}
}

func (s *statusWaiter) Register(_ *engine.Game) {}

func (s *statusWaiter) Start() {}

func presetNames() []string {
	names := []string{universe.PresetGliderGun, universe.PresetAcorn, universe.PresetNoise}
	sort.Strings(names)
	return names
}

func newBenchGame(preset string, speed int) (*engine.Game, *statusWaiter) {
	o := engine.DefaultOptions
	o.Preset = preset
	o.Speed = speed
	g := engine.New(&o, universe.NewCatalog(universe.DefaultNoiseOptions))
	w := &statusWaiter{ch: make(chan engine.Status, 1000)}
	g.RegisterViewer(w)
	return g, w
}

// gameSteps sends Next one by one, each step waits for the merged result
func gameSteps(b *testing.B, preset string) {
	g, w := newBenchGame(preset, 1)
	g.Start()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Send(engine.Next{})
		for st := range w.ch {
			if st.Ticks >= i+1 {
				break
			}
		}
	}
	b.StopTimer()
	if err := g.Stop(); err != nil {
		b.Fatal(err)
	}
}

// gameBurst sends benchTicks requests at once, they are coalesced into batches
func gameBurst(b *testing.B, preset string) {
	g, w := newBenchGame(preset, engine.MaxSpeed)
	g.Start()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g.Send(engine.PresetSelected{Name: preset})
		for st := range w.ch {
			if st.Generation == i+1 {
				break
			}
		}
		b.StartTimer()
		for j := 0; j < benchTicks; j++ {
			g.Send(engine.TickRequested{})
		}
		for st := range w.ch {
			if st.Generation == i+1 && st.Ticks >= benchTicks {
				break
			}
		}
	}
	b.StopTimer()
	if err := g.Stop(); err != nil {
		b.Fatal(err)
	}
}

func Benchmark_Step(b *testing.B) {
	for _, p := range presetNames() {
		b.Run(p, func(b *testing.B) {
			gameSteps(b, p)
		})
	}
}

func Benchmark_Burst(b *testing.B) {
	for _, p := range presetNames() {
		b.Run(p, func(b *testing.B) {
			gameBurst(b, p)
		})
	}
}
