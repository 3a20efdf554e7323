package leveldata

import "github.com/automoto/busterclone/shared/gamemath"

const (
	collectibleSize  = 24
	checkpointWidth  = 30
	checkpointHeight = 50
)

// Default returns the built-in stage. Each call returns a fresh copy.
func Default() *Layout {
	l := &Layout{
		Name:         "stage1",
		Width:        2400,
		BossRoomX:    2200,
		PlayerSpawn:  Point{X: 100, Y: 380},
		RespawnPoint: Point{X: 100, Y: 340},
		Platforms: []gamemath.Rect{
			{X: 0, Y: 440, W: 2400, H: 40}, // ground
			{X: 400, Y: 350, W: 200, H: 20},
			{X: 700, Y: 300, W: 200, H: 20},
			{X: 1000, Y: 250, W: 200, H: 20},
			{X: 1300, Y: 350, W: 200, H: 20},
		},
	}
	for _, x := range []float64{800, 1600, 2300} {
		l.Collectibles = append(l.Collectibles, Collectible{
			Rect: gamemath.Rect{X: x, Y: 410, W: collectibleSize, H: collectibleSize},
			Kind: CollectibleHealth,
		})
	}
	for _, x := range []float64{600, 1200, 1800} {
		l.Checkpoints = append(l.Checkpoints, gamemath.Rect{X: x, Y: 390, W: checkpointWidth, H: checkpointHeight})
	}
	return l
}
