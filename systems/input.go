package systems

import (
	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/yohamta/donburi"
)

// LatchInput installs this tick's held actions.
// Must run BEFORE UpdatePlayer in the system order.
func LatchInput(w donburi.World, held [cfg.ActionCount]bool) {
	e, ok := components.Input.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(e)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = held
}

func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func getInput(w donburi.World) *components.InputData {
	e, ok := components.Input.First(w)
	if !ok {
		return &components.InputData{}
	}
	return components.Input.Get(e)
}
