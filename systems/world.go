package systems

import (
	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/yohamta/donburi"
)

// System is one per-tick step over the world.
type System func(w donburi.World)

// WithGameplayChecks wraps a system to skip execution once the run is won or lost.
func WithGameplayChecks(system System) System {
	return func(w donburi.World) {
		if game := getGame(w); game != nil && game.State.Terminal() {
			return
		}
		system(w)
	}
}

func getGame(w donburi.World) *components.GameData {
	e, ok := components.Game.First(w)
	if !ok {
		return nil
	}
	return components.Game.Get(e)
}

func getLevel(w donburi.World) *components.LevelData {
	e, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(e)
}

func getCamera(w donburi.World) *components.CameraData {
	e, ok := components.Camera.First(w)
	if !ok {
		return nil
	}
	return components.Camera.Get(e)
}

func getRuntime(w donburi.World) *components.RuntimeData {
	e, ok := components.Runtime.First(w)
	if !ok {
		return nil
	}
	return components.Runtime.Get(e)
}

// GameState reports the run state, GamePlaying if the world has no game record.
func GameState(w donburi.World) cfg.GameStateID {
	if game := getGame(w); game != nil {
		return game.State
	}
	return cfg.GamePlaying
}

// setGameState moves a playing run into a terminal state. It never leaves a terminal state.
func setGameState(w donburi.World, state cfg.GameStateID) bool {
	game := getGame(w)
	if game == nil || game.State.Terminal() || state == game.State {
		return false
	}
	game.State = state
	return true
}
