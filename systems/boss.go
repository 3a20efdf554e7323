package systems

import (
	"math"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/automoto/busterclone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// bossSense is what the boss perceives at decision time.
type bossSense struct {
	Distance    float64 // |player.x - boss.x|
	Facing      float64
	HealthRatio float64
	Grounded    bool
}

// bossMove is the behavior chosen for one tick.
type bossMove struct {
	State  cfg.BossStateID
	SpeedX float64
}

// chooseBossMove picks chase or attack from distance, then lets a low-health
// boss near the player break into a slide. The die is only rolled when the
// slide is otherwise allowed.
func chooseBossMove(s bossSense, dice components.Dice) bossMove {
	move := bossMove{State: cfg.BossAttack}
	if s.Distance > cfg.Boss.SafeDistance {
		move = bossMove{State: cfg.BossChase, SpeedX: s.Facing * cfg.Boss.Speed}
	}

	if s.HealthRatio < cfg.Boss.AggroThreshold &&
		s.Distance < cfg.Boss.AggroRange &&
		s.Grounded &&
		dice.Float64() < cfg.Boss.AggroChance {
		move = bossMove{State: cfg.BossSlide, SpeedX: s.Facing * cfg.Boss.Speed * cfg.Boss.SlideMultiplier}
	}
	return move
}

// shouldReactiveJump answers a fast-rising player with a jump of its own.
func shouldReactiveJump(playerSpeedY float64, grounded bool, dice components.Dice) bool {
	return playerSpeedY < cfg.Boss.ReactiveJumpSpeedY && grounded && dice.Float64() < cfg.Boss.ReactiveJumpChance
}

// shootThreshold is re-rolled every tick.
func shootThreshold(dice components.Dice) float64 {
	return cfg.Boss.ShootMinTicks + dice.Float64()*cfg.Boss.ShootSpreadTicks
}

// UpdateBoss runs the boss AI and its bullets against the player.
func UpdateBoss(w donburi.World) {
	bossEntry, ok := tags.Boss.First(w)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	rt := getRuntime(w)
	if rt == nil || rt.Dice == nil {
		return
	}

	cameraX := 0.0
	if camera := getCamera(w); camera != nil {
		cameraX = camera.Position.X
	}

	hits := updateBoss(bossEntry, playerEntry, cameraX, rt.Dice)
	if hits.Amount > 0 || hits.Hits > 0 {
		queueDamage(playerEntry, hits.Amount, hits.Hits)
	}
}

func updateBoss(bossEntry, playerEntry *donburi.Entry, cameraX float64, dice components.Dice) components.DamageEventData {
	boss := components.Boss.Get(bossEntry)
	physics := components.Physics.Get(bossEntry)
	health := components.Health.Get(bossEntry)
	obj := components.Object.Get(bossEntry).Object
	gun := components.Gun.Get(bossEntry)

	playerObj := components.Object.Get(playerEntry)
	playerPhysics := components.Physics.Get(playerEntry)

	// Gravity and floor. OnGround only holds on ticks the floor clamp fires,
	// so the reactive jump and aggro slide cannot fire mid-air.
	physics.SpeedY += cfg.Physics.Gravity
	obj.Y += physics.SpeedY
	physics.OnGround = false
	if obj.Y+obj.H > cfg.Physics.FloorY {
		obj.Y = cfg.Physics.FloorY - obj.H
		physics.SpeedY = 0
		physics.OnGround = true
	}

	dx := playerObj.X - obj.X
	boss.Direction = gamemath.Facing(obj.X, playerObj.X)

	move := chooseBossMove(bossSense{
		Distance:    math.Abs(dx),
		Facing:      boss.Direction,
		HealthRatio: health.Ratio(),
		Grounded:    physics.OnGround,
	}, dice)
	boss.State = move.State
	physics.SpeedX = move.SpeedX
	obj.X += physics.SpeedX

	if shouldReactiveJump(playerPhysics.SpeedY, physics.OnGround, dice) {
		physics.SpeedY = cfg.Boss.JumpForce
	}

	boss.ShootTimer++
	if float64(boss.ShootTimer) > shootThreshold(dice) {
		gun.Bullets = append(gun.Bullets, fireBossShot(obj, boss.Direction))
		boss.ShootTimer = 0
	}

	var hit components.DamageEventData
	gun.Bullets, hit.Amount, hit.Hits = advanceBossBullets(gun.Bullets, cameraX, playerObj.Rect())

	obj.Update()
	return hit
}

func fireBossShot(obj *resolv.Object, dir float64) components.Bullet {
	return components.Bullet{
		X:      muzzleX(obj, dir),
		Y:      obj.Y + obj.H/2,
		W:      cfg.Boss.BulletSize,
		H:      cfg.Boss.BulletSize,
		SpeedX: dir * cfg.Boss.BulletSpeed,
		Damage: cfg.Boss.BulletDamage,
	}
}
