package sim

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// InputSource supplies the held actions for the next tick.
type InputSource interface {
	Next(Snapshot) Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func(Snapshot) Input

func (f InputFunc) Next(s Snapshot) Input { return f(s) }

// Loop steps a simulation at a fixed tick rate until stopped or the run ends.
type Loop struct {
	sim      *Simulation
	source   InputSource
	tickRate int
	onTick   func(Snapshot)
	stopChan chan struct{}
	stopOnce sync.Once
}

// ErrInvalidTickRate is returned for a non-positive tick rate.
var ErrInvalidTickRate = errors.New("tick rate must be positive")

func NewLoop(sim *Simulation, source InputSource, tickRate int) (*Loop, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("new loop: %w: %d", ErrInvalidTickRate, tickRate)
	}
	return &Loop{
		sim:      sim,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}, nil
}

// OnTick registers an observer called with the snapshot after every tick.
func (l *Loop) OnTick(fn func(Snapshot)) {
	l.onTick = fn
}

// Run blocks until Stop is called or the simulation reaches a terminal state.
func (l *Loop) Run() Snapshot {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("simulation loop started at %d ticks/second", l.tickRate)

	snap := l.sim.Snapshot()
	for {
		select {
		case <-l.stopChan:
			log.Println("simulation loop stopped")
			return snap
		case <-ticker.C:
			snap = l.tick(snap)
			if snap.State.Terminal() {
					log.Printf("simulation loop finished: %s", snap.State)
				return snap
			}
		}
	}
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) tick(prev Snapshot) Snapshot {
	l.sim.Step(l.source.Next(prev))
	snap := l.sim.Snapshot()
	if l.onTick != nil {
		l.onTick(snap)
	}
	return snap
}
