package components

import "github.com/yohamta/donburi"

// LivesData counts remaining respawns. MaxLives 0 means unlimited.
type LivesData struct {
	Lives    int
	MaxLives int
}

var Lives = donburi.NewComponentType[LivesData]()

func (l *LivesData) Limited() bool {
	return l.MaxLives > 0
}
