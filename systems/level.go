package systems

import (
	"math"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/automoto/busterclone/tags"
	"github.com/yohamta/donburi"
)

// UpdateLevel runs camera follow, pickups, checkpoints and platform landing, in that order.
func UpdateLevel(w donburi.World) {
	UpdateCamera(w)
	UpdateCollectibles(w)
	UpdateCheckpoints(w)
	UpdatePlatforms(w)
}

// UpdateCollectibles consumes every uncollected pickup the player touches.
// Collected pickups stay in the level, flagged.
func UpdateCollectibles(w donburi.World) {
	level := getLevel(w)
	if level == nil {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	for _, e := range overlapping(w, playerObj.Rect(), tags.ResolvCollectible, level.Collectibles) {
		pickup := components.Collectible.Get(e)
		if pickup.Collected {
			continue
		}
		pickup.Collected = true
		if pickup.Kind == leveldata.CollectibleHealth {
			heal(health)
		}
	}
}

// UpdateCheckpoints activates every checkpoint the player overlaps. The last
// one in level order becomes the respawn point.
func UpdateCheckpoints(w donburi.World) {
	level := getLevel(w)
	if level == nil {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	for _, e := range overlapping(w, playerObj.Rect(), tags.ResolvCheckpoint, level.Checkpoints) {
		components.Checkpoint.Get(e).Activated = true
		obj := components.Object.Get(e)
		level.LastCheckpoint = leveldata.Point{X: obj.X, Y: obj.Y}
	}
}

// UpdatePlatforms lands a falling player on any platform whose top they
// crossed this tick.
func UpdatePlatforms(w donburi.World) {
	level := getLevel(w)
	if level == nil {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	// A landing zeroes SpeedY, so no later platform can land the player again
	// and one broad-phase query from the pre-landing body is enough.
	candidates := overlapCandidates(w, playerObj.Rect(), tags.ResolvPlatform)
	for _, entity := range level.Platforms {
		if !w.Valid(entity) {
			continue
		}
		platform := components.Object.Get(w.Entry(entity))
		if !candidates[platform.Object] {
			continue
		}
		if !gamemath.Intersects(playerObj.Rect(), platform.Rect()) {
			continue
		}
		if physics.SpeedY > 0 && playerObj.Y+playerObj.H-physics.SpeedY <= platform.Y {
			playerObj.Y = platform.Y - playerObj.H
			physics.SpeedY = 0
			physics.OnGround = true
			player.JumpCount = 0
		}
	}
	playerObj.Update()
}

// heal restores HealFraction of max health, capped at max.
func heal(h *components.HealthData) {
	amount := int(math.Floor(float64(h.Max) * cfg.Pickup.HealFraction))
	h.Current = min(h.Current+amount, h.Max)
}
