package factory

import (
	"github.com/automoto/busterclone/archetypes"
	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/yohamta/donburi"
)

func CreateGame(w donburi.World) *donburi.Entry {
	game := archetypes.Game.Spawn(w)
	components.Game.SetValue(game, components.GameData{State: cfg.GamePlaying})
	return game
}

func CreateInput(w donburi.World) *donburi.Entry {
	input := archetypes.Input.Spawn(w)
	components.Input.SetValue(input, components.InputData{})
	return input
}

func CreateRuntime(w donburi.World, dice components.Dice, clock components.Clock) *donburi.Entry {
	rt := archetypes.Runtime.Spawn(w)
	components.Runtime.SetValue(rt, components.RuntimeData{Dice: dice, Clock: clock})
	return rt
}
