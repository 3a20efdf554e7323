package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction float64 // -1 left, 1 right
	JumpCount int

	Sliding       bool
	SlideTimer    int
	SlideCooldown int

	Charging   bool
	ChargeTime int

	// Fire-rate gate. Zero LastShotAt means no shot yet.
	LastShotAt time.Time
}

var Player = donburi.NewComponentType[PlayerData]()
