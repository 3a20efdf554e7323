package components

import (
	"github.com/automoto/busterclone/config"
	"github.com/yohamta/donburi"
)

type BossData struct {
	Direction  float64
	State      config.BossStateID // recomputed every tick
	ShootTimer int
}

var Boss = donburi.NewComponentType[BossData]()
