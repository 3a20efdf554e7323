package components

import (
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name      string
	Width     float64
	BossRoomX float64

	// Level order. Collected pickups are dropped from Collectibles.
	Platforms    []donburi.Entity
	Collectibles []donburi.Entity
	Checkpoints  []donburi.Entity

	LastCheckpoint leveldata.Point // respawn position
}

var Level = donburi.NewComponentType[LevelData]()
