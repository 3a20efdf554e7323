package components

import (
	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's body in the broad-phase space. Its X/Y/W/H are authoritative.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the body bounds.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData wraps the level's broad-phase space.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
