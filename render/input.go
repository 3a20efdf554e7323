package render

import (
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings maps each action to the keys that hold it.
var KeyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	cfg.ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	cfg.ActionCrouch:    {ebiten.KeyArrowDown, ebiten.KeyS},
	cfg.ActionJump:      {ebiten.KeyZ, ebiten.KeySpace},
	cfg.ActionShoot:     {ebiten.KeyX},
}

// PollInput reads the keyboard into a simulation input.
func PollInput() sim.Input {
	var in sim.Input
	for actionID, keys := range KeyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				in = in.Press(actionID)
				break
			}
		}
	}
	return in
}
