package factory

import (
	"github.com/automoto/busterclone/archetypes"
	"github.com/automoto/busterclone/components"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/automoto/busterclone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateCollectible(w donburi.World, c leveldata.Collectible) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(w)

	r := c.Rect
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvCollectible)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = collectible

	components.Object.SetValue(collectible, components.ObjectData{Object: obj})
	components.Collectible.SetValue(collectible, components.CollectibleData{Kind: c.Kind})

	addToSpace(w, obj)
	return collectible
}
