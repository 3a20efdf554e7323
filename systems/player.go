package systems

import (
	"time"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdatePlayer runs the player controller: locomotion, floor clamp, jump,
// charge shooting and bullet flight. Platform landing happens later in UpdateLevel.
func UpdatePlayer(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}

	var now time.Time
	if rt := getRuntime(w); rt != nil && rt.Clock != nil {
		now = rt.Clock.Now()
	}
	updatePlayer(playerEntry, getInput(w), now)
}

func updatePlayer(e *donburi.Entry, input *components.InputData, now time.Time) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object
	gun := components.Gun.Get(e)

	handleMovement(input, player, physics, obj)

	// Gravity and integration
	physics.SpeedY += cfg.Physics.Gravity
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	physics.OnGround = false
	if obj.Y+obj.H > cfg.Physics.FloorY {
		obj.Y = cfg.Physics.FloorY - obj.H
		physics.SpeedY = 0
		physics.OnGround = true
		player.JumpCount = 0
	}

	if GetAction(input, cfg.ActionJump).JustPressed {
		tryJump(player, physics, obj)
	}

	handleShooting(input, player, gun, obj, now)

	if player.SlideCooldown > 0 {
		player.SlideCooldown--
	}

	gun.Bullets = advancePlayerBullets(gun.Bullets)

	obj.Update()
}

func handleMovement(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, obj *resolv.Object) {
	if player.Sliding {
		physics.SpeedX = player.Direction * cfg.Player.SlideSpeed
		player.SlideTimer--
		if player.SlideTimer <= 0 {
			endSlide(player, obj)
		}
	} else {
		switch {
		case GetAction(input, cfg.ActionMoveLeft).Pressed:
			physics.SpeedX = -cfg.Player.Speed
			player.Direction = cfg.DirectionLeft
		case GetAction(input, cfg.ActionMoveRight).Pressed:
			physics.SpeedX = cfg.Player.Speed
			player.Direction = cfg.DirectionRight
		default:
			physics.SpeedX = 0
		}

		// Slide: crouch + jump held together while grounded
		canSlide := physics.OnGround && player.SlideCooldown <= 0
		if canSlide && GetAction(input, cfg.ActionCrouch).Pressed && GetAction(input, cfg.ActionJump).Pressed {
			startSlide(player, obj)
		}
	}
}

func startSlide(player *components.PlayerData, obj *resolv.Object) {
	player.Sliding = true
	player.SlideTimer = cfg.Player.SlideDuration
	player.SlideCooldown = cfg.Player.SlideCooldown
	reduceHitboxForSlide(obj)
}

func endSlide(player *components.PlayerData, obj *resolv.Object) {
	player.Sliding = false
	player.SlideTimer = 0
	restoreHitbox(obj, true)
}

func tryJump(player *components.PlayerData, physics *components.PhysicsData, obj *resolv.Object) {
	if player.JumpCount >= cfg.Player.MaxJumps {
		return
	}
	physics.SpeedY = cfg.Player.JumpForce
	player.JumpCount++
	physics.OnGround = false

	// Jumping interrupts a slide; the hitbox regrows downward.
	if player.Sliding {
		player.Sliding = false
		player.SlideTimer = 0
		restoreHitbox(obj, false)
	}
}

// reduceHitboxForSlide shrinks the body keeping its feet in place.
func reduceHitboxForSlide(obj *resolv.Object) {
	targetHeight := cfg.Player.SlideHeight
	if obj.H <= targetHeight {
		return
	}
	heightDiff := obj.H - targetHeight
	obj.H = targetHeight
	obj.Y += heightDiff
}

// restoreHitbox returns the body to full height, growing upward when keepFeet is set.
func restoreHitbox(obj *resolv.Object, keepFeet bool) {
	normalHeight := cfg.Player.CollisionHeight
	if obj.H >= normalHeight {
		return
	}
	heightDiff := normalHeight - obj.H
	obj.H = normalHeight
	if keepFeet {
		obj.Y -= heightDiff
	}
}

func handleShooting(input *components.InputData, player *components.PlayerData, gun *components.GunData, obj *resolv.Object, now time.Time) {
	if GetAction(input, cfg.ActionShoot).Pressed {
		player.Charging = true
		player.ChargeTime++
		return
	}
	if player.Charging {
		if b, ok := firePlayerShot(player, obj, now); ok {
			gun.Bullets = append(gun.Bullets, b)
		}
		player.Charging = false
		player.ChargeTime = 0
	}
}

// firePlayerShot builds the released shot. Uncharged shots are rate limited
// on wall-clock time; charged shots always fire.
func firePlayerShot(player *components.PlayerData, obj *resolv.Object, now time.Time) (components.Bullet, bool) {
	charged := player.ChargeTime >= cfg.Player.ChargeThreshold
	if !charged && !player.LastShotAt.IsZero() && now.Sub(player.LastShotAt) < cfg.Player.ShootInterval {
		return components.Bullet{}, false
	}

	size, damage := cfg.Player.BulletSize, cfg.Player.BulletDamage
	if charged {
		size, damage = cfg.Player.ChargedSize, cfg.Player.ChargedDamage
	}
	player.LastShotAt = now
	return components.Bullet{
		X:       muzzleX(obj, player.Direction),
		Y:       obj.Y + obj.H/2,
		W:       size,
		H:       size,
		SpeedX:  player.Direction * cfg.Player.BulletSpeed,
		Damage:  damage,
		Charged: charged,
	}, true
}

// muzzleX is the front edge of a body facing dir.
func muzzleX(obj *resolv.Object, dir float64) float64 {
	if dir == cfg.DirectionRight {
		return obj.X + obj.W
	}
	return obj.X
}

// ChargeProgress is min(chargeTime/threshold, 1).
func ChargeProgress(player *components.PlayerData) float64 {
	if !player.Charging {
		return 0
	}
	p := float64(player.ChargeTime) / float64(cfg.Player.ChargeThreshold)
	if p > 1 {
		return 1
	}
	return p
}

// ChargeVisible reports whether the charge meter should be shown.
func ChargeVisible(player *components.PlayerData) bool {
	return player.Charging && player.ChargeTime > cfg.Player.ChargeVisibleTime
}
