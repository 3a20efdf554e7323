package systems

import (
	"log"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/tags"
	"github.com/yohamta/donburi"
)

// UpdateBossRoom reveals the boss once the player is past the boss-room line. It never un-reveals.
func UpdateBossRoom(w donburi.World) {
	game := getGame(w)
	level := getLevel(w)
	if game == nil || level == nil || game.BossRevealed {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	if components.Object.Get(playerEntry).X > level.BossRoomX {
		game.BossRevealed = true
	}
}

// UpdateGameState ends the run with a win once the boss is out of health.
func UpdateGameState(w donburi.World) {
	bossEntry, ok := tags.Boss.First(w)
	if !ok {
		return
	}
	if components.Health.Get(bossEntry).Current > 0 {
		return
	}
	if setGameState(w, cfg.GameWin) {
		game := getGame(w)
		log.Printf("boss defeated at tick %d after %d respawns", game.Tick, game.Respawns)
	}
}
