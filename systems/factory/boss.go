package factory

import (
	"github.com/automoto/busterclone/archetypes"
	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateBoss(w donburi.World, x, y float64) *donburi.Entry {
	boss := archetypes.Boss.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Boss.CollisionWidth, cfg.Boss.CollisionHeight)
	components.Object.SetValue(boss, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Boss.CollisionWidth, cfg.Boss.CollisionHeight))
	obj.AddTags("character", tags.ResolvBoss)
	obj.Data = boss

	components.Boss.SetValue(boss, components.BossData{
		Direction: cfg.Boss.Direction,
		State:     cfg.BossIdle,
	})
	components.Physics.SetValue(boss, components.PhysicsData{})
	components.Health.SetValue(boss, components.HealthData{
		Current: cfg.Boss.Health,
		Max:     cfg.Boss.Health,
	})
	components.Gun.SetValue(boss, components.GunData{})

	addToSpace(w, obj)
	return boss
}
