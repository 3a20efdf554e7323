package systems

import (
	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/gamemath"
)

// advancePlayerBullets moves every bullet and keeps those still inside the
// fixed viewport window [0, Screen.Width]. Order is preserved.
func advancePlayerBullets(bullets []components.Bullet) []components.Bullet {
	kept := make([]components.Bullet, 0, len(bullets))
	for _, b := range bullets {
		b.X += b.SpeedX
		if b.X < 0 || b.X > float64(cfg.Screen.Width) {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// advanceBossBullets moves every bullet, drops those outside the live camera
// window and reports the damage of the ones that struck target.
func advanceBossBullets(bullets []components.Bullet, cameraX float64, target gamemath.Rect) ([]components.Bullet, int, int) {
	kept := make([]components.Bullet, 0, len(bullets))
	damage, hits := 0, 0
	for _, b := range bullets {
		b.X += b.SpeedX
		if b.X < cameraX || b.X > cameraX+float64(cfg.Screen.Width) {
			continue
		}
		if gamemath.Intersects(b.Rect(), target) {
			damage += b.Damage
			hits++
			continue
		}
		kept = append(kept, b)
	}
	return kept, damage, hits
}

// collideBullets removes the bullets striking target and returns their total damage.
func collideBullets(bullets []components.Bullet, target gamemath.Rect) ([]components.Bullet, int, int) {
	kept := make([]components.Bullet, 0, len(bullets))
	damage, hits := 0, 0
	for _, b := range bullets {
		if gamemath.Intersects(b.Rect(), target) {
			damage += b.Damage
			hits++
			continue
		}
		kept = append(kept, b)
	}
	return kept, damage, hits
}
