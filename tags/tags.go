package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Boss        = donburi.NewTag().SetName("Boss")
	Platform    = donburi.NewTag().SetName("Platform")
	Collectible = donburi.NewTag().SetName("Collectible")
	Checkpoint  = donburi.NewTag().SetName("Checkpoint")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlayer      = "Player"
	ResolvBoss        = "Boss"
	ResolvPlatform    = "platform"
	ResolvCollectible = "collectible"
	ResolvCheckpoint  = "checkpoint"
	ResolvProbe       = "probe"
)
