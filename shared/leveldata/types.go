// Package leveldata provides level layouts: the built-in stage and Tiled TMX parsing.
// Layout types are plain data with no ebitengine, donburi or resolv dependency.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/busterclone/shared/gamemath"
)

// ErrInvalidLevel is wrapped by every layout validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// Layout holds everything the simulation needs to build a stage.
// Slice order is level order and is preserved by the simulation.
type Layout struct {
	Name         string
	Width        float64
	BossRoomX    float64
	PlayerSpawn  Point
	RespawnPoint Point // initial last checkpoint
	Platforms    []gamemath.Rect
	Collectibles []Collectible
	Checkpoints  []gamemath.Rect
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// CollectibleKind names what a pickup does when touched.
type CollectibleKind string

const CollectibleHealth CollectibleKind = "health"

type Collectible struct {
	Rect gamemath.Rect
	Kind CollectibleKind
}

// Validate checks the layout against the viewport width the camera scrolls with.
func (l *Layout) Validate(viewportWidth float64) error {
	if l == nil {
		return fmt.Errorf("%w: nil layout", ErrInvalidLevel)
	}
	if l.Width < viewportWidth {
		return fmt.Errorf("%w: width %.0f narrower than viewport %.0f", ErrInvalidLevel, l.Width, viewportWidth)
	}
	if l.BossRoomX < 0 || l.BossRoomX > l.Width {
		return fmt.Errorf("%w: bossRoomX %.0f outside level", ErrInvalidLevel, l.BossRoomX)
	}
	for i, p := range l.Platforms {
		if !p.Valid() {
			return fmt.Errorf("%w: platform %d has non-positive size", ErrInvalidLevel, i)
		}
	}
	for i, c := range l.Collectibles {
		if !c.Rect.Valid() {
			return fmt.Errorf("%w: collectible %d has non-positive size", ErrInvalidLevel, i)
		}
		if c.Kind != CollectibleHealth {
			return fmt.Errorf("%w: collectible %d has unknown type %q", ErrInvalidLevel, i, c.Kind)
		}
	}
	for i, c := range l.Checkpoints {
		if !c.Valid() {
			return fmt.Errorf("%w: checkpoint %d has non-positive size", ErrInvalidLevel, i)
		}
	}
	return nil
}
