package systems

import (
	"math"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera scrolls the view once the player leaves the dead zone.
func UpdateCamera(w donburi.World) {
	camera := getCamera(w)
	level := getLevel(w)
	if camera == nil || level == nil {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	camera.Position.X = followCamera(camera.Position.X, playerObject.X, level.Width)
}

// followCamera keeps playerX inside [cameraX+RetreatOffset, cameraX+AdvanceOffset]
// and clamps the result to [0, levelWidth-Screen.Width].
func followCamera(cameraX, playerX, levelWidth float64) float64 {
	switch {
	case playerX > cameraX+cfg.Camera.AdvanceOffset:
		return math.Min(playerX-cfg.Camera.AdvanceOffset, levelWidth-float64(cfg.Screen.Width))
	case playerX < cameraX+cfg.Camera.RetreatOffset:
		return math.Max(playerX-cfg.Camera.RetreatOffset, 0)
	}
	return cameraX
}
