package factory

import (
	"github.com/automoto/busterclone/archetypes"
	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel builds the space, static geometry and level record from layout.
// Entity lists keep layout order.
func CreateLevel(w donburi.World, layout *leveldata.Layout) *donburi.Entry {
	CreateSpace(w, int(layout.Width), cfg.Screen.Height, spaceCellSize, spaceCellSize)

	level := archetypes.Level.Spawn(w)
	levelData := &components.LevelData{
		Name:           layout.Name,
		Width:          layout.Width,
		BossRoomX:      layout.BossRoomX,
		LastCheckpoint: layout.RespawnPoint,
	}

	for _, r := range layout.Platforms {
		levelData.Platforms = append(levelData.Platforms, CreatePlatform(w, r).Entity())
	}
	for _, c := range layout.Collectibles {
		levelData.Collectibles = append(levelData.Collectibles, CreateCollectible(w, c).Entity())
	}
	for i, r := range layout.Checkpoints {
		levelData.Checkpoints = append(levelData.Checkpoints, CreateCheckpoint(w, i, r).Entity())
	}

	components.Level.Set(level, levelData)
	return level
}
