package factory

import (
	"github.com/automoto/busterclone/archetypes"
	"github.com/automoto/busterclone/components"
	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/automoto/busterclone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	addToSpace(w, obj)
	return platform
}
