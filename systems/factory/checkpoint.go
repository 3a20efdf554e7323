package factory

import (
	"github.com/automoto/busterclone/archetypes"
	"github.com/automoto/busterclone/components"
	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/automoto/busterclone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateCheckpoint creates an inactive checkpoint. index is its level order.
func CreateCheckpoint(w donburi.World, index int, r gamemath.Rect) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = checkpoint

	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Index:     index,
		Activated: false,
	})

	addToSpace(w, obj)
	return checkpoint
}
