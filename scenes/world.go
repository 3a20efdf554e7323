package scenes

import (
	"image/color"
	"log"
	"time"

	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/render"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/automoto/busterclone/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LayoutSource returns a fresh copy of the level to play.
type LayoutSource func() (*leveldata.Layout, error)

// PlatformerScene plays one level and rebuilds it on restart or tuning reload.
type PlatformerScene struct {
	source  LayoutSource
	options []sim.Option
	sim     *sim.Simulation
	snap    sim.Snapshot
	hud     *render.HUD
	watcher *cfg.TuningWatcher
	tuning  string
}

func NewPlatformerScene(source LayoutSource, opts ...sim.Option) (*PlatformerScene, error) {
	ps := &PlatformerScene{source: source, options: opts}
	if err := ps.restart(); err != nil {
		return nil, err
	}
	return ps, nil
}

// WatchTuning reloads the tuning file at path whenever w reports a change.
func (ps *PlatformerScene) WatchTuning(w *cfg.TuningWatcher, path string) {
	ps.watcher = w
	ps.tuning = path
}

func (ps *PlatformerScene) restart() error {
	layout, err := ps.source()
	if err != nil {
		return err
	}
	s, err := sim.New(layout, ps.options...)
	if err != nil {
		return err
	}
	ps.sim = s
	ps.snap = s.Snapshot()
	ps.hud = render.NewHUD()
	return nil
}

func (ps *PlatformerScene) Update() {
	ps.pollTuning()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := ps.restart(); err != nil {
			log.Printf("restart failed: %v", err)
		}
	}

	ps.sim.Step(render.PollInput())
	ps.snap = ps.sim.Snapshot()
	ps.hud.Update(ps.snap, 1/float32(ebiten.TPS()))
}

func (ps *PlatformerScene) pollTuning() {
	if ps.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-ps.watcher.Events:
			if !ok {
				ps.watcher = nil
				return
			}
			ps.reloadTuning(name)
		case err, ok := <-ps.watcher.Errors:
			if !ok {
				ps.watcher = nil
				return
			}
			log.Printf("tuning watcher: %v", err)
		default:
			return
		}
	}
}

func (ps *PlatformerScene) reloadTuning(changed string) {
	t, err := cfg.LoadTuningFile(ps.tuning)
	if err != nil {
		log.Printf("tuning reload (%s) rejected: %v", changed, err)
		return
	}
	previous := cfg.Current()
	cfg.Apply(t)
	if err := ps.restart(); err != nil {
		cfg.Apply(previous)
		log.Printf("tuning reload (%s) failed: %v", changed, err)
		return
	}
	log.Printf("tuning reloaded from %s", ps.tuning)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	render.DrawWorld(screen, ps.snap, time.Now())
	ps.hud.Draw(screen, ps.snap)
}
