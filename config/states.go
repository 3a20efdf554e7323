package config

// GameStateID is the process-wide run state. It only ever moves forward.
type GameStateID int

const (
	GamePlaying GameStateID = iota
	GameWin
	GameOver
)

func (s GameStateID) String() string {
	switch s {
	case GamePlaying:
		return "playing"
	case GameWin:
		return "win"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// Terminal reports whether the simulation is frozen in this state.
func (s GameStateID) Terminal() bool {
	return s != GamePlaying
}

// BossStateID is the boss behavior selected for the current tick.
type BossStateID int

const (
	BossIdle BossStateID = iota
	BossChase
	BossAttack
	BossSlide
)

func (s BossStateID) String() string {
	switch s {
	case BossIdle:
		return "idle"
	case BossChase:
		return "chase"
	case BossAttack:
		return "attack"
	case BossSlide:
		return "slide"
	}
	return "unknown"
}
