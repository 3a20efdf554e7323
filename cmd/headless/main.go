package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/busterclone/assets"
	"github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/sim"
)

func main() {
	level := flag.String("level", "stage1", "Embedded level name or path to a .tmx file")
	tuning := flag.String("tuning", "", "YAML tuning file (empty = built-in defaults)")
	seed := flag.Int64("seed", 1, "Boss dice seed")
	maxTicks := flag.Int("max-ticks", 10000, "Give up after this many ticks")
	realtime := flag.Bool("realtime", false, "Step on a wall-clock ticker instead of as fast as possible")
	tickRate := flag.Int("tickrate", 60, "Ticks per second in realtime mode")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Invalid -tickrate %d: must be positive", *tickRate)
	}

	if *tuning != "" {
		t, err := config.LoadTuningFile(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.Apply(t)
	}

	layout, err := assets.ResolveLevel(*level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	pilot := sim.NewAutopilot()

	if *realtime {
		s, err := sim.New(layout, sim.WithSeed(*seed))
		if err != nil {
			log.Fatalf("Failed to start simulation: %v", err)
		}
		loop, err := sim.NewLoop(s, pilot, *tickRate)
		if err != nil {
			log.Fatalf("Failed to start loop: %v", err)
		}
		loop.OnTick(func(snap sim.Snapshot) {
			if snap.Tick >= *maxTicks {
				loop.Stop()
			}
		})

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Shutting down simulation...")
			loop.Stop()
		}()

		report(loop.Run())
		return
	}

	clock := sim.NewFrameClock(time.Unix(0, 0), time.Second/time.Duration(*tickRate))
	s, err := sim.New(layout, sim.WithSeed(*seed), sim.WithClock(clock))
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	snap := s.Snapshot()
	for snap.Tick < *maxTicks && !snap.State.Terminal() {
		s.Step(pilot.Next(snap))
		clock.Advance()
		snap = s.Snapshot()
		if snap.Tick%600 == 0 {
			log.Printf("tick %d: player x=%.0f hp=%d, boss hp=%d (%s)",
				snap.Tick, snap.Player.Body.X, snap.Player.Health, snap.Boss.Health, snap.Boss.State)
		}
	}
	report(snap)
}

func report(snap sim.Snapshot) {
	log.Printf("Finished level after %d ticks: %s (respawns: %d, boss hp: %d/%d)",
		snap.Tick, snap.State, snap.Respawns, snap.Boss.Health, snap.Boss.MaxHealth)
	if snap.State != config.GameWin {
		os.Exit(1)
	}
}
