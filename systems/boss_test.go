package systems

import (
	"testing"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseBossMove(t *testing.T) {
	tests := []struct {
		name      string
		sense     bossSense
		roll      float64
		wantState cfg.BossStateID
		wantVX    float64
		wantRolls int
	}{
		{
			name:      "far chases",
			sense:     bossSense{Distance: 400, Facing: -1, HealthRatio: 1, Grounded: true},
			wantState: cfg.BossChase,
			wantVX:    -3,
		},
		{
			name:      "exactly safe distance attacks",
			sense:     bossSense{Distance: 250, Facing: 1, HealthRatio: 1, Grounded: true},
			wantState: cfg.BossAttack,
		},
		{
			name:      "healthy boss never rolls",
			sense:     bossSense{Distance: 50, Facing: 1, HealthRatio: 0.5, Grounded: true},
			roll:      0,
			wantState: cfg.BossAttack,
		},
		{
			name:      "aggro slide",
			sense:     bossSense{Distance: 50, Facing: 1, HealthRatio: 0.4, Grounded: true},
			roll:      0.01,
			wantState: cfg.BossSlide,
			wantVX:    7.5,
			wantRolls: 1,
		},
		{
			name:      "aggro roll fails",
			sense:     bossSense{Distance: 50, Facing: -1, HealthRatio: 0.4, Grounded: true},
			roll:      0.05,
			wantState: cfg.BossAttack,
			wantRolls: 1,
		},
		{
			name:      "airborne boss does not slide",
			sense:     bossSense{Distance: 50, Facing: 1, HealthRatio: 0.1, Grounded: false},
			roll:      0,
			wantState: cfg.BossAttack,
		},
		{
			name:      "out of aggro range",
			sense:     bossSense{Distance: 100, Facing: 1, HealthRatio: 0.1, Grounded: true},
			roll:      0,
			wantState: cfg.BossAttack,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dice := &fixedDice{value: tt.roll}
			move := chooseBossMove(tt.sense, dice)
			assert.Equal(t, tt.wantState, move.State)
			assert.Equal(t, tt.wantVX, move.SpeedX)
			assert.Equal(t, tt.wantRolls, dice.calls)
		})
	}
}

func TestShouldReactiveJump(t *testing.T) {
	dice := &fixedDice{value: 0.1}
	assert.True(t, shouldReactiveJump(-6, true, dice))
	assert.Equal(t, 1, dice.calls)

	assert.False(t, shouldReactiveJump(-5, true, dice), "trigger is strict")
	assert.False(t, shouldReactiveJump(-9, false, dice))
	assert.Equal(t, 1, dice.calls)

	assert.False(t, shouldReactiveJump(-9, true, &fixedDice{value: 0.3}))
}

func TestShootThreshold(t *testing.T) {
	assert.Equal(t, 60.0, shootThreshold(&fixedDice{value: 0}))
	assert.Equal(t, 120.0, shootThreshold(&fixedDice{value: 0.5}))
}

func TestBossChasesPlayer(t *testing.T) {
	tw := newTestWorld(t)

	UpdateBoss(tw.w)

	boss := components.Boss.Get(tw.boss)
	physics := components.Physics.Get(tw.boss)
	assert.Equal(t, cfg.BossChase, boss.State)
	assert.Equal(t, cfg.DirectionLeft, boss.Direction)
	assert.Equal(t, 1997.0, tw.bossObj().X)
	assert.Equal(t, 400.0, tw.bossObj().Y)
	assert.True(t, physics.OnGround)
	assert.Equal(t, 1, tw.dice.calls, "only the shoot roll")
}

func TestBossAttacksInRange(t *testing.T) {
	tw := newTestWorld(t)
	tw.placePlayer(2100, 400)

	UpdateBoss(tw.w)

	boss := components.Boss.Get(tw.boss)
	assert.Equal(t, cfg.BossAttack, boss.State)
	assert.Equal(t, cfg.DirectionRight, boss.Direction)
	assert.Equal(t, 2000.0, tw.bossObj().X)
}

func TestBossAggroSlide(t *testing.T) {
	tw := newTestWorld(t)
	tw.dice.value = 0.01
	tw.bossHealth().Current = 90
	tw.placePlayer(1950, 400)

	UpdateBoss(tw.w)

	assert.Equal(t, cfg.BossSlide, components.Boss.Get(tw.boss).State)
	assert.Equal(t, 1992.5, tw.bossObj().X)
}

func TestBossReactiveJump(t *testing.T) {
	tw := newTestWorld(t)
	tw.dice.value = 0.1
	tw.playerPhysics().SpeedY = -8

	UpdateBoss(tw.w)
	assert.Equal(t, cfg.Boss.JumpForce, components.Physics.Get(tw.boss).SpeedY)

	// Airborne next tick, so no second jump roll.
	UpdateBoss(tw.w)
	assert.False(t, components.Physics.Get(tw.boss).OnGround)
	assert.Equal(t, cfg.Boss.JumpForce+cfg.Physics.Gravity, components.Physics.Get(tw.boss).SpeedY)
}

func TestBossShootsOnTimer(t *testing.T) {
	tw := newTestWorld(t)
	tw.dice.value = 0
	getCamera(tw.w).Position.X = 1600
	gun := components.Gun.Get(tw.boss)

	for i := 0; i < 60; i++ {
		UpdateBoss(tw.w)
	}
	assert.Empty(t, gun.Bullets)
	assert.Equal(t, 60, components.Boss.Get(tw.boss).ShootTimer)

	UpdateBoss(tw.w)
	require.Len(t, gun.Bullets, 1)
	assert.Equal(t, 0, components.Boss.Get(tw.boss).ShootTimer)

	b := gun.Bullets[0]
	assert.Equal(t, tw.bossObj().X-cfg.Boss.BulletSpeed, b.X)
	assert.Equal(t, tw.bossObj().Y+20, b.Y)
	assert.Equal(t, -cfg.Boss.BulletSpeed, b.SpeedX)
	assert.Equal(t, cfg.Boss.BulletDamage, b.Damage)
}

func TestBossBulletHitsPlayer(t *testing.T) {
	tw := newTestWorld(t)
	tw.placePlayer(100, 400)
	gun := components.Gun.Get(tw.boss)
	gun.Bullets = []components.Bullet{
		{X: 110, Y: 410, W: 8, H: 8, SpeedX: -6, Damage: 10},
		{X: 700, Y: 410, W: 8, H: 8, SpeedX: -6, Damage: 10},
	}

	UpdateBoss(tw.w)
	require.Len(t, gun.Bullets, 1)
	assert.Equal(t, 694.0, gun.Bullets[0].X)
	require.True(t, tw.player.HasComponent(components.DamageEvent))

	UpdateCombat(tw.w)
	assert.Equal(t, 90, tw.playerHealth().Current)
	assert.False(t, tw.player.HasComponent(components.DamageEvent))
}

func TestBossBulletsPrunedAgainstCamera(t *testing.T) {
	bullets := []components.Bullet{
		{X: 1003, SpeedX: -6},
		{X: 1500, SpeedX: -6},
		{X: 1798, SpeedX: 6},
	}
	farTarget := gamemath.Rect{X: -100, Y: -100, W: 1, H: 1}
	kept, damage, hits := advanceBossBullets(bullets, 1000, farTarget)
	require.Len(t, kept, 1)
	assert.Equal(t, 1494.0, kept[0].X)
	assert.Zero(t, damage)
	assert.Zero(t, hits)
}
