package render

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/busterclone/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	parallaxFactor  = 0.2
	parallaxBlocks  = 5
	parallaxSpacing = 300
	doorOffset      = 180 // boss door sits this far past the boss-room line
	doorWidth       = 20
	doorHeight      = 80
)

// DrawWorld renders the level, actors and bullets as seen from the camera.
// now drives the purely cosmetic pulse and flash effects.
func DrawWorld(screen *ebiten.Image, snap sim.Snapshot, now time.Time) {
	screen.Fill(colorSky)
	camX := snap.CameraX
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawParallax(screen, camX, float32(w), float32(h))
	drawLevel(screen, snap.Level, camX, now)
	drawBoss(screen, snap.Boss, camX)
	drawPlayer(screen, snap.Player, camX, now)
}

func drawParallax(screen *ebiten.Image, camX float64, w, h float32) {
	scroll := float32(camX * parallaxFactor)
	for i := 0; i < parallaxBlocks; i++ {
		x := float32(i)*parallaxSpacing - scroll
		vector.DrawFilledRect(screen, x, h/3, w/4, h/2, colorParallax, false)
	}
}

func drawLevel(screen *ebiten.Image, level sim.LevelSnapshot, camX float64, now time.Time) {
	for _, p := range level.Platforms {
		x := float32(p.X - camX)
		vector.DrawFilledRect(screen, x, float32(p.Y), float32(p.W), float32(p.H), colorPlatform, false)
		vector.DrawFilledRect(screen, x, float32(p.Y), float32(p.W), 3, colorPlatformHi, false)
	}

	// Pickups pulse between 80% and 100% size.
	pulse := 0.9 + 0.1*math.Sin(float64(now.UnixMilli())/200)
	for _, c := range level.Collectibles {
		if c.Collected {
			continue
		}
		cx := float32(c.Body.X + c.Body.W/2 - camX)
		cy := float32(c.Body.Y + c.Body.H/2)
		vector.DrawFilledCircle(screen, cx, cy, float32(c.Body.W/2*pulse), colorPickup, true)
	}

	for _, chk := range level.Checkpoints {
		clr := colorCheckpoint
		if chk.Active {
			clr = colorActive
		}
		x := float32(chk.Body.X - camX)
		vector.DrawFilledRect(screen, x, float32(chk.Body.Y), 4, float32(chk.Body.H), colorCheckpoint, false)
		vector.DrawFilledRect(screen, x+4, float32(chk.Body.Y), float32(chk.Body.W-4), 16, clr, false)
	}

	doorX := float32(level.BossRoomX + doorOffset - camX)
	if len(level.Platforms) > 0 {
		ground := level.Platforms[0]
		vector.DrawFilledRect(screen, doorX, float32(ground.Y-doorHeight), doorWidth, doorHeight, colorDoor, false)
	}
}

func drawPlayer(screen *ebiten.Image, p sim.PlayerSnapshot, camX float64, now time.Time) {
	body := color.Color(colorPlayer)
	if p.ChargeReady {
		body = colorActive
	}
	if p.ChargeVisible && (now.UnixMilli()/100)%2 == 0 {
		body = colorFlash
	}
	drawActor(screen, p.ActorSnapshot, camX, body, colorPlayerDark)

	for _, b := range p.Bullets {
		x := float32(b.X - camX)
		if b.Charged {
			vector.DrawFilledCircle(screen, x+float32(b.W/2), float32(b.Y+b.H/2), float32(b.W/2), colorBullet, true)
			continue
		}
		vector.DrawFilledRect(screen, x, float32(b.Y), float32(b.W), float32(b.H), colorBullet, false)
	}
}

func drawBoss(screen *ebiten.Image, b sim.BossSnapshot, camX float64) {
	drawActor(screen, b.ActorSnapshot, camX, colorBoss, colorBossDark)
	for _, bullet := range b.Bullets {
		vector.DrawFilledRect(screen, float32(bullet.X-camX), float32(bullet.Y), float32(bullet.W), float32(bullet.H), colorBossBullet, false)
	}
}

// drawActor draws a helmeted figure filling body, facing its direction.
func drawActor(screen *ebiten.Image, a sim.ActorSnapshot, camX float64, fill, dark color.Color) {
	x, y := float32(a.Body.X-camX), float32(a.Body.Y)
	bw, bh := float32(a.Body.W), float32(a.Body.H)
	head := bh / 2

	vector.DrawFilledRect(screen, x+bw/8, y, bw*3/4, head, fill, false)
	vector.DrawFilledRect(screen, x+bw/4, y+head*2/5, bw/2, head*3/5, colorFace, false)

	eyeX := x + bw/8 + 2
	armX := x - bw/4
	if a.Direction > 0 {
		eyeX = x + bw*9/16
		armX = x + bw*7/8
	}
	vector.DrawFilledRect(screen, eyeX, y+head/2, 4, head/3, colorEye, false)

	vector.DrawFilledRect(screen, x+bw/8, y+head, bw*3/4, bh*3/8, fill, false)
	vector.DrawFilledRect(screen, x+bw/4, y+bh*7/8, bw/2, bh/8, dark, false)
	vector.DrawFilledRect(screen, armX, y+head+2, bw*3/8, bh/5, fill, false)
}
