package systems

import (
	"github.com/automoto/busterclone/components"
	"github.com/automoto/busterclone/tags"
	"github.com/yohamta/donburi"
)

// queueDamage adds a pending hit to e, summing with any hit already queued this tick.
func queueDamage(e *donburi.Entry, amount, hits int) {
	if e.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(e)
		dmg.Amount += amount
		dmg.Hits += hits
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{Amount: amount, Hits: hits})
}

// UpdateCombat resolves player bullets against the boss, then applies every
// queued damage event clamping health at zero.
func UpdateCombat(w donburi.World) {
	playerEntry, okPlayer := tags.Player.First(w)
	bossEntry, okBoss := tags.Boss.First(w)
	if okPlayer && okBoss {
		gun := components.Gun.Get(playerEntry)
		var damage, hits int
		gun.Bullets, damage, hits = collideBullets(gun.Bullets, components.Object.Get(bossEntry).Rect())
		if hits > 0 {
			queueDamage(bossEntry, damage, hits)
		}
	}

	var pending []*donburi.Entry
	components.DamageEvent.Each(w, func(e *donburi.Entry) {
		pending = append(pending, e)
	})
	for _, e := range pending {
		dmg := components.DamageEvent.Get(e)
		if e.HasComponent(components.Health) {
			takeDamage(components.Health.Get(e), dmg.Amount)
		}
		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

func takeDamage(h *components.HealthData, amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}
