package systems

import (
	"log"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/tags"
	"github.com/yohamta/donburi"
)

// UpdateRespawn returns a dead player to the last checkpoint in the same tick.
// With limited lives the last death ends the run instead.
func UpdateRespawn(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	if components.Health.Get(playerEntry).Current > 0 {
		return
	}

	lives := components.Lives.Get(playerEntry)
	if lives.Limited() {
		lives.Lives--
		if lives.Lives <= 0 {
			lives.Lives = 0
			if setGameState(w, cfg.GameOver) {
				log.Printf("game over: out of lives")
			}
			return
		}
	}

	RespawnPlayer(w, playerEntry)
}

// RespawnPlayer moves the player to the level's last checkpoint with full health.
func RespawnPlayer(w donburi.World, playerEntry *donburi.Entry) {
	level := getLevel(w)
	if level == nil {
		return
	}
	resetPlayerAtPosition(playerEntry, level.LastCheckpoint.X, level.LastCheckpoint.Y)

	if game := getGame(w); game != nil {
		game.Respawns++
	}
}

func resetPlayerAtPosition(e *donburi.Entry, spawnX, spawnY float64) {
	obj := components.Object.Get(e)
	obj.X = spawnX
	obj.Y = spawnY

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	health := components.Health.Get(e)
	health.Current = health.Max

	// Clear transient move state so the body respawns at full height.
	player := components.Player.Get(e)
	player.Sliding = false
	player.SlideTimer = 0
	player.Charging = false
	player.ChargeTime = 0
	restoreHitbox(obj.Object, false)

	obj.Update()
}
