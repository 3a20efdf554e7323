// Package sim drives the headless simulation: a fixed system order over a
// donburi world, injected input, dice and clock, and read-only snapshots.
package sim

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/automoto/busterclone/systems"
	"github.com/automoto/busterclone/systems/factory"
	"github.com/yohamta/donburi"
)

// Simulation owns one run of a level.
type Simulation struct {
	world   donburi.World
	systems []systems.System
	player  *donburi.Entry
	boss    *donburi.Entry
}

type options struct {
	dice  Dice
	clock Clock
}

type Option func(*options)

// WithDice injects the random source used by the boss.
func WithDice(d Dice) Option {
	return func(o *options) { o.dice = d }
}

// WithSeed seeds a math/rand source for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *options) { o.dice = rand.New(rand.NewSource(seed)) }
}

// WithClock injects the wall clock used for the fire-rate gate.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// New validates the current tuning and layout and builds a fresh run.
func New(layout *leveldata.Layout, opts ...Option) (*Simulation, error) {
	if err := cfg.Current().Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	if err := layout.Validate(float64(cfg.Screen.Width)); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	o := options{clock: SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dice == nil {
		o.dice = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := donburi.NewWorld()
	factory.CreateLevel(w, layout)
	s := &Simulation{
		world:  w,
		player: factory.CreatePlayer(w, layout.PlayerSpawn.X, layout.PlayerSpawn.Y),
		boss:   factory.CreateBoss(w, cfg.Boss.SpawnX, cfg.Boss.SpawnY),
	}
	factory.CreateCamera(w)
	factory.CreateGame(w)
	factory.CreateInput(w)
	factory.CreateRuntime(w, o.dice, o.clock)

	s.systems = []systems.System{
		systems.WithGameplayChecks(systems.UpdatePlayer),
		systems.WithGameplayChecks(systems.UpdateLevel),
		systems.WithGameplayChecks(systems.UpdateBoss),
		systems.WithGameplayChecks(systems.UpdateCombat),
		systems.WithGameplayChecks(systems.UpdateBossRoom),
		systems.WithGameplayChecks(systems.UpdateRespawn),
		systems.WithGameplayChecks(systems.UpdateGameState),
	}

	log.Printf("simulation created: level %q (%d platforms, %d collectibles, %d checkpoints)",
		layout.Name, len(layout.Platforms), len(layout.Collectibles), len(layout.Checkpoints))
	return s, nil
}

// Step advances one tick with in held. A won or lost run does not change.
func (s *Simulation) Step(in Input) {
	if s.State().Terminal() {
		return
	}
	systems.LatchInput(s.world, in)
	for _, system := range s.systems {
		system(s.world)
	}
	s.game().Tick++
}

// State returns the run state.
func (s *Simulation) State() cfg.GameStateID {
	return systems.GameState(s.world)
}

// Tick is the number of steps simulated while playing.
func (s *Simulation) Tick() int {
	return s.game().Tick
}
