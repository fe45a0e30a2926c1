package engine

import (
	"sync"
	"time"
)

// LooperMode is the looper running state
type LooperMode int

const (
	LooperPaused LooperMode = iota
	LooperRunning
	LooperStopped
)

// LooperState is shared between the Game and the looper goroutine
type LooperState struct {
	Mode  LooperMode
	Speed int //ticks per second, used in LooperRunning mode
}

// Looper sends TickRequested with the fixed rate while running
// the next tick time is counted from the previous tick, so late wake-ups don't accumulate
type Looper struct {
	mu    sync.Mutex
	state LooperState
	wake  chan struct{}
	send  func(Message)
	now   func() time.Time
}

// NewLooper creates the paused Looper
func NewLooper(send func(Message)) *Looper {
	return &Looper{
		wake: make(chan struct{}, 1),
		send: send,
		now:  time.Now,
	}
}

// Period returns the interval between ticks for the speed
func Period(speed int) time.Duration {
	if speed < 1 {
		speed = 1
	}
	return time.Second / time.Duration(speed)
}

// State returns the current looper state
func (l *Looper) State() LooperState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Set switches the looper state, the stopped looper can't be restarted
func (l *Looper) Set(st LooperState) {
	l.mu.Lock()
	if l.state.Mode != LooperStopped {
		l.state = st
	}
	l.mu.Unlock()
	l.notify()
}

// Stop stops the looper loop
func (l *Looper) Stop() {
	l.mu.Lock()
	l.state = LooperState{Mode: LooperStopped}
	l.mu.Unlock()
	l.notify()
}

func (l *Looper) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run is the looper loop, should start as a goroutine
// returns when Stop is called
func (l *Looper) Run() error {
	var last time.Time
	for {
		st := l.State()
		switch st.Mode {
		case LooperStopped:
			return nil
		case LooperPaused:
			<-l.wake
			continue
		}

		//the first tick after start is sent immediately
		if !last.IsZero() {
			if wait := last.Add(Period(st.Speed)).Sub(l.now()); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-l.wake:
					//the state is changed, recalculate the deadline
					timer.Stop()
					continue
				}
			}
		}
		last = l.now()
		l.send(TickRequested{})
	}
}
