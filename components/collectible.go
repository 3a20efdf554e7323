package components

import (
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/yohamta/donburi"
)

type CollectibleData struct {
	Kind      leveldata.CollectibleKind
	Collected bool // one-way
}

var Collectible = donburi.NewComponentType[CollectibleData]()
