package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround bool // set when clamped to the floor or landed on a platform this tick
}

var Physics = donburi.NewComponentType[PhysicsData]()
