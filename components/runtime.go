package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// Dice yields uniform values in [0, 1).
type Dice interface {
	Float64() float64
}

// Clock is the wall-clock source for real-time gates.
type Clock interface {
	Now() time.Time
}

// RuntimeData carries the injected non-deterministic sources.
type RuntimeData struct {
	Dice  Dice
	Clock Clock
}

var Runtime = donburi.NewComponentType[RuntimeData]()
