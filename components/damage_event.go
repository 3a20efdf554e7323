package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on an entity with Health and consumed by UpdateCombat.
// Hits landing in the same tick accumulate.
type DamageEventData struct {
	Amount int
	Hits   int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
