package main

import (
	"flag"
	"image"
	"log"
	"path/filepath"

	"github.com/automoto/busterclone/assets"
	"github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/fonts"
	"github.com/automoto/busterclone/scenes"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/automoto/busterclone/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Screen.Width, config.Screen.Height)
	return config.Screen.Width, config.Screen.Height
}

func main() {
	level := flag.String("level", "stage1", "Embedded level name or path to a .tmx file")
	tuning := flag.String("tuning", "", "YAML tuning file (empty = built-in defaults)")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	seed := flag.Int64("seed", 0, "Boss dice seed (0 = time based)")
	flag.Parse()

	if *tuning != "" {
		t, err := config.LoadTuningFile(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.Apply(t)
	}

	fonts.LoadDefaults()

	var opts []sim.Option
	if *seed != 0 {
		opts = append(opts, sim.WithSeed(*seed))
	}

	source := func() (*leveldata.Layout, error) { return assets.ResolveLevel(*level) }
	scene, err := scenes.NewPlatformerScene(source, opts...)
	if err != nil {
		log.Fatalf("Failed to start level: %v", err)
	}

	if *watch && *tuning != "" {
		w, err := config.NewTuningWatcher(filepath.Dir(*tuning))
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer w.Close()
		scene.WatchTuning(w, *tuning)
	}

	ebiten.SetWindowSize(config.Screen.Width, config.Screen.Height)
	ebiten.SetWindowTitle("Buster")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
