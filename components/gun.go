package components

import (
	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Bullet moves horizontally at a constant speed.
type Bullet struct {
	X, Y    float64
	W, H    float64
	SpeedX  float64
	Damage  int
	Charged bool
}

func (b Bullet) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// GunData owns an actor's live bullets in spawn order.
type GunData struct {
	Bullets []Bullet
}

var Gun = donburi.NewComponentType[GunData]()
