package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	Index     int // level order
	Activated bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
