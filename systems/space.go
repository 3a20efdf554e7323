package systems

import (
	"github.com/automoto/busterclone/components"
	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/automoto/busterclone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// probeMargin widens queries so fractional overlaps at cell edges are still found.
const probeMargin = 1.0

// overlapCandidates returns the space objects carrying tag that share a cell with r.
// Callers still confirm with gamemath.Intersects.
func overlapCandidates(w donburi.World, r gamemath.Rect, tag string) map[*resolv.Object]bool {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	wide := r.Inflate(probeMargin)
	probe := resolv.NewObject(wide.X, wide.Y, wide.W, wide.H, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	found := make(map[*resolv.Object]bool)
	for _, obj := range check.ObjectsByTags(tag) {
		found[obj] = true
	}
	return found
}

// overlapping returns, in the given order, the entries whose bodies intersect r.
func overlapping(w donburi.World, r gamemath.Rect, tag string, order []donburi.Entity) []*donburi.Entry {
	candidates := overlapCandidates(w, r, tag)
	if len(candidates) == 0 {
		return nil
	}
	var hits []*donburi.Entry
	for _, entity := range order {
		if !w.Valid(entity) {
			continue
		}
		e := w.Entry(entity)
		obj := components.Object.Get(e)
		if candidates[obj.Object] && gamemath.Intersects(r, obj.Rect()) {
			hits = append(hits, e)
		}
	}
	return hits
}
