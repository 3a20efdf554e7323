package components

import (
	"github.com/automoto/busterclone/config"
	"github.com/yohamta/donburi"
)

type GameData struct {
	State        config.GameStateID
	Tick         int
	BossRevealed bool // one-way
	Respawns     int
}

var Game = donburi.NewComponentType[GameData]()
