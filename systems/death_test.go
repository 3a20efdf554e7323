package systems

import (
	"testing"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespawnAtLastCheckpoint(t *testing.T) {
	tw := newTestWorld(t)
	tw.level().LastCheckpoint = leveldata.Point{X: 1200, Y: 390}

	tw.placePlayer(1500, 300)
	physics := tw.playerPhysics()
	physics.SpeedX, physics.SpeedY = 4, -3
	tw.playerHealth().Current = 0

	player := tw.playerData()
	player.Sliding = true
	player.SlideTimer = 10
	player.Charging = true
	player.ChargeTime = 50
	tw.playerObj().H = cfg.Player.SlideHeight

	UpdateRespawn(tw.w)

	obj := tw.playerObj()
	assert.Equal(t, 1200.0, obj.X)
	assert.Equal(t, 390.0, obj.Y)
	assert.Equal(t, cfg.Player.CollisionHeight, obj.H)
	assert.Equal(t, 100, tw.playerHealth().Current)
	assert.Zero(t, physics.SpeedX)
	assert.Zero(t, physics.SpeedY)
	assert.False(t, player.Sliding)
	assert.False(t, player.Charging)
	assert.Zero(t, player.ChargeTime)
	assert.Equal(t, 1, tw.game().Respawns)
	assert.Equal(t, cfg.GamePlaying, tw.game().State)
}

func TestNoRespawnWhileAlive(t *testing.T) {
	tw := newTestWorld(t)
	tw.placePlayer(700, 400)
	tw.playerHealth().Current = 1

	UpdateRespawn(tw.w)
	assert.Equal(t, 700.0, tw.playerObj().X)
	assert.Zero(t, tw.game().Respawns)
}

func TestBulletDeathRespawnsSameTick(t *testing.T) {
	tw := newTestWorld(t)
	tw.placePlayer(100, 400)
	tw.playerHealth().Current = 10
	components.Gun.Get(tw.boss).Bullets = []components.Bullet{
		{X: 110, Y: 410, W: 8, H: 8, SpeedX: -6, Damage: 10},
	}

	UpdateBoss(tw.w)
	UpdateCombat(tw.w)
	require.Equal(t, 0, tw.playerHealth().Current)

	UpdateRespawn(tw.w)
	assert.Equal(t, 100, tw.playerHealth().Current)
	assert.Equal(t, 100.0, tw.playerObj().X)
	assert.Equal(t, 340.0, tw.playerObj().Y)
}

func TestLimitedLives(t *testing.T) {
	tw := newTestWorld(t)
	lives := components.Lives.Get(tw.player)
	lives.Lives, lives.MaxLives = 2, 2

	tw.playerHealth().Current = 0
	UpdateRespawn(tw.w)
	assert.Equal(t, 1, lives.Lives)
	assert.Equal(t, cfg.GamePlaying, tw.game().State)
	assert.Equal(t, 100, tw.playerHealth().Current)

	tw.playerHealth().Current = 0
	UpdateRespawn(tw.w)
	assert.Equal(t, 0, lives.Lives)
	assert.Equal(t, cfg.GameOver, tw.game().State)
	assert.Equal(t, 0, tw.playerHealth().Current, "no respawn after the last life")
}

func TestUnlimitedLivesNeverEndRun(t *testing.T) {
	tw := newTestWorld(t)
	require.Zero(t, components.Lives.Get(tw.player).MaxLives)

	for i := 0; i < 10; i++ {
		tw.playerHealth().Current = 0
		UpdateRespawn(tw.w)
	}
	assert.Equal(t, cfg.GamePlaying, tw.game().State)
	assert.Equal(t, 10, tw.game().Respawns)
}
