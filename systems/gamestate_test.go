package systems

import (
	"testing"

	cfg "github.com/automoto/busterclone/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestBossRoomRevealIsOneWay(t *testing.T) {
	tw := newTestWorld(t)

	tw.placePlayer(2200, 400)
	UpdateBossRoom(tw.w)
	assert.False(t, tw.game().BossRevealed, "strictly past the line")

	tw.placePlayer(2201, 400)
	UpdateBossRoom(tw.w)
	assert.True(t, tw.game().BossRevealed)

	tw.placePlayer(100, 400)
	UpdateBossRoom(tw.w)
	assert.True(t, tw.game().BossRevealed)
}

func TestWinWhenBossDefeated(t *testing.T) {
	tw := newTestWorld(t)

	tw.bossHealth().Current = 1
	UpdateGameState(tw.w)
	assert.Equal(t, cfg.GamePlaying, GameState(tw.w))

	tw.bossHealth().Current = 0
	UpdateGameState(tw.w)
	assert.Equal(t, cfg.GameWin, GameState(tw.w))
}

func TestTerminalStateIsFinal(t *testing.T) {
	tw := newTestWorld(t)

	assert.True(t, setGameState(tw.w, cfg.GameOver))
	assert.False(t, setGameState(tw.w, cfg.GameWin))
	assert.False(t, setGameState(tw.w, cfg.GamePlaying))
	assert.Equal(t, cfg.GameOver, GameState(tw.w))

	tw.bossHealth().Current = 0
	UpdateGameState(tw.w)
	assert.Equal(t, cfg.GameOver, GameState(tw.w))
}

func TestWithGameplayChecks(t *testing.T) {
	tw := newTestWorld(t)
	calls := 0
	system := WithGameplayChecks(func(donburi.World) { calls++ })

	system(tw.w)
	assert.Equal(t, 1, calls)

	tw.game().State = cfg.GameWin
	system(tw.w)
	assert.Equal(t, 1, calls)
}

func TestGameStateWithoutRecord(t *testing.T) {
	w := donburi.NewWorld()
	assert.Equal(t, cfg.GamePlaying, GameState(w))
	assert.False(t, setGameState(w, cfg.GameWin))

	// Systems tolerate a bare world.
	assert.NotPanics(t, func() {
		for _, s := range []System{UpdatePlayer, UpdateLevel, UpdateBoss, UpdateCombat, UpdateBossRoom, UpdateRespawn, UpdateGameState} {
			s(w)
		}
	})
}
