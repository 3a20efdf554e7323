package sim

import (
	"testing"
	"time"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constDice float64

func (d constDice) Float64() float64 { return float64(d) }

func newTestSim(t *testing.T) (*Simulation, *FrameClock) {
	t.Helper()
	clock := NewFrameClock(time.Unix(0, 0), time.Second/60)
	s, err := New(leveldata.Default(), WithDice(constDice(0.99)), WithClock(clock))
	require.NoError(t, err)
	return s, clock
}

func (s *Simulation) placePlayer(x, y float64) {
	obj := components.Object.Get(s.player)
	obj.X, obj.Y = x, y
	obj.Update()
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	layout := leveldata.Default()
	layout.Width = 100

	_, err := New(layout)
	require.Error(t, err)
	assert.ErrorIs(t, err, leveldata.ErrInvalidLevel)

	_, err = New(nil)
	assert.ErrorIs(t, err, leveldata.ErrInvalidLevel)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	saved := cfg.Current()
	t.Cleanup(func() { cfg.Apply(saved) })

	bad := cfg.Defaults()
	bad.Player.MaxJumps = 0
	cfg.Apply(bad)

	_, err := New(leveldata.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, cfg.ErrInvalidConfig)
}

func TestInitialSnapshot(t *testing.T) {
	s, _ := newTestSim(t)
	snap := s.Snapshot()

	assert.Equal(t, cfg.GamePlaying, snap.State)
	assert.Zero(t, snap.Tick)
	assert.Zero(t, snap.CameraX)
	assert.False(t, snap.BossRevealed)

	assert.Equal(t, 100.0, snap.Player.Body.X)
	assert.Equal(t, 380.0, snap.Player.Body.Y)
	assert.Equal(t, 100, snap.Player.Health)
	assert.Equal(t, cfg.DirectionRight, snap.Player.Direction)

	assert.Equal(t, 2000.0, snap.Boss.Body.X)
	assert.Equal(t, 200, snap.Boss.Health)
	assert.Equal(t, cfg.DirectionLeft, snap.Boss.Direction)

	assert.Len(t, snap.Level.Platforms, 5)
	assert.Len(t, snap.Level.Collectibles, 3)
	assert.Len(t, snap.Level.Checkpoints, 3)
	assert.Equal(t, leveldata.Point{X: 100, Y: 340}, snap.Level.LastCheckpoint)
}

func TestStepAppliesInput(t *testing.T) {
	s, _ := newTestSim(t)

	s.Step(Input{}.Press(cfg.ActionMoveRight))
	snap := s.Snapshot()
	assert.Equal(t, 104.0, snap.Player.Body.X)
	assert.Equal(t, 1, snap.Tick)
	assert.Equal(t, 1997.0, snap.Boss.Body.X)
}

func TestSnapshotIsDetached(t *testing.T) {
	s, clock := newTestSim(t)
	s.Step(Input{}.Press(cfg.ActionShoot))
	clock.Advance()
	s.Step(Input{})

	snap := s.Snapshot()
	require.Len(t, snap.Player.Bullets, 1)
	snap.Player.Bullets[0].X = -500
	snap.Level.Platforms[0].W = 1

	again := s.Snapshot()
	assert.NotEqual(t, -500.0, again.Player.Bullets[0].X)
	assert.Equal(t, 2400.0, again.Level.Platforms[0].W)
}

func TestCameraFollowsPlayer(t *testing.T) {
	s, _ := newTestSim(t)
	s.placePlayer(446, 400)

	s.Step(Input{}.Press(cfg.ActionMoveRight))
	assert.Equal(t, 50.0, s.Snapshot().CameraX)
}

func TestBossRevealedByPosition(t *testing.T) {
	s, _ := newTestSim(t)
	s.placePlayer(2198, 400)

	s.Step(Input{}.Press(cfg.ActionMoveRight))
	assert.True(t, s.Snapshot().BossRevealed)

	s.placePlayer(100, 400)
	s.Step(Input{})
	assert.True(t, s.Snapshot().BossRevealed)
}

func TestWinFreezesSimulation(t *testing.T) {
	s, _ := newTestSim(t)
	boss := components.Object.Get(s.boss)
	health := components.Health.Get(s.boss)
	gun := components.Gun.Get(s.player)

	// Inside the viewport so player bullets survive their own update.
	boss.X = 600
	boss.Update()

	// Parked bullets wait where the chasing boss will be after its move.
	shoot := func(damage int) {
		gun.Bullets = append(gun.Bullets, components.Bullet{X: boss.X - 3, Y: 410, W: 8, H: 8, Damage: damage})
	}
	for i := 0; i < 3; i++ {
		shoot(20)
	}
	s.Step(Input{})
	require.Equal(t, 140, health.Current)
	require.Equal(t, cfg.GamePlaying, s.State())

	for i := 0; i < 7; i++ {
		shoot(20)
	}
	s.Step(Input{})
	assert.Equal(t, 0, health.Current)
	assert.Equal(t, cfg.GameWin, s.State())

	frozen := s.Snapshot()
	for i := 0; i < 30; i++ {
		s.Step(Input{}.Press(cfg.ActionMoveLeft, cfg.ActionJump))
	}
	assert.Equal(t, frozen, s.Snapshot())
}

func TestRespawnWithinStep(t *testing.T) {
	s, _ := newTestSim(t)
	s.placePlayer(300, 400)
	components.Health.Get(s.player).Current = 10
	components.Gun.Get(s.boss).Bullets = []components.Bullet{
		{X: 310, Y: 410, W: 8, H: 8, SpeedX: -6, Damage: 10},
	}

	s.Step(Input{})
	snap := s.Snapshot()
	assert.Equal(t, 100, snap.Player.Health)
	assert.Equal(t, 100.0, snap.Player.Body.X)
	assert.Equal(t, 340.0, snap.Player.Body.Y)
	assert.Equal(t, 1, snap.Respawns)
	assert.Equal(t, cfg.GamePlaying, snap.State)
}

func TestCollectedPickupStaysInLevel(t *testing.T) {
	s, _ := newTestSim(t)
	s.placePlayer(790, 400)
	components.Health.Get(s.player).Current = 30

	s.Step(Input{})
	snap := s.Snapshot()
	assert.Equal(t, 80, snap.Player.Health)
	require.Len(t, snap.Level.Collectibles, 3)
	assert.True(t, snap.Level.Collectibles[0].Collected)
	assert.False(t, snap.Level.Collectibles[1].Collected)

	components.Health.Get(s.player).Current = 30
	s.Step(Input{})
	assert.Equal(t, 30, s.Snapshot().Player.Health)
}

func TestChargeInSnapshot(t *testing.T) {
	s, _ := newTestSim(t)
	for i := 0; i < 45; i++ {
		s.Step(Input{}.Press(cfg.ActionShoot))
	}
	snap := s.Snapshot()
	assert.True(t, snap.Player.Charging)
	assert.True(t, snap.Player.ChargeVisible)
	assert.False(t, snap.Player.ChargeReady)
	assert.InDelta(t, 0.5, snap.Player.ChargeProgress, 1e-9)
}

func TestSeededRunsMatch(t *testing.T) {
	run := func() Snapshot {
		clock := NewFrameClock(time.Unix(0, 0), time.Second/60)
		s, err := New(leveldata.Default(), WithSeed(7), WithClock(clock))
		require.NoError(t, err)
		pilot := NewAutopilot()
		for i := 0; i < 600; i++ {
			s.Step(pilot.Next(s.Snapshot()))
			clock.Advance()
		}
		return s.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestAutopilotDefeatsBoss(t *testing.T) {
	clock := NewFrameClock(time.Unix(0, 0), time.Second/60)
	s, err := New(leveldata.Default(), WithSeed(1), WithClock(clock))
	require.NoError(t, err)

	pilot := NewAutopilot()
	for i := 0; i < 3000 && !s.State().Terminal(); i++ {
		s.Step(pilot.Next(s.Snapshot()))
		clock.Advance()
	}
	snap := s.Snapshot()
	assert.Equal(t, cfg.GameWin, snap.State)
	assert.Zero(t, snap.Boss.Health)
}

func TestInput(t *testing.T) {
	in := Input{}.Press(cfg.ActionJump, cfg.ActionShoot, cfg.ActionCount, cfg.ActionNone)
	assert.True(t, in.Held(cfg.ActionJump))
	assert.True(t, in.Held(cfg.ActionShoot))
	assert.False(t, in.Held(cfg.ActionMoveLeft))
	assert.False(t, in.Held(cfg.ActionCount))
}

func TestFrameClock(t *testing.T) {
	start := time.Unix(10, 0)
	clock := NewFrameClock(start, 20*time.Millisecond)
	clock.Advance()
	clock.Advance()
	assert.Equal(t, start.Add(40*time.Millisecond), clock.Now())
}

func TestAutopilotTapsUnchargedShots(t *testing.T) {
	pilot := NewAutopilot()
	var snap Snapshot
	snap.Player.Body.X = pilot.HoldX
	snap.Player.Direction = cfg.DirectionRight
	snap.Boss.Body.X = pilot.HoldX + pilot.Range - 10

	released := 0
	for i := 0; i < pilot.TapPeriod*3; i++ {
		in := pilot.Next(snap)
		assert.False(t, in.Held(cfg.ActionJump))
		assert.False(t, in.Held(cfg.ActionMoveRight))
		if !in.Held(cfg.ActionShoot) {
			released++
		}
	}
	assert.Equal(t, 3, released)
	assert.Less(t, pilot.TapPeriod, cfg.Player.ChargeThreshold)
}
