package sim

import (
	"math"

	cfg "github.com/automoto/busterclone/config"
)

// Autopilot is a scripted player: it walks to a holding spot and fires at the
// boss whenever it is inside the viewport the player's bullets live in.
type Autopilot struct {
	HoldX     float64 // stop walking right past this x
	Range     float64 // start shooting when the boss is this close
	TapPeriod int     // ticks between shot releases
	ticks     int
}

// NewAutopilot returns a bot tuned for the built-in stage.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		HoldX:     450,
		Range:     cfg.Boss.SafeDistance + 50,
		TapPeriod: 10,
	}
}

func (a *Autopilot) Next(s Snapshot) Input {
	a.ticks++
	var in Input

	player, boss := s.Player, s.Boss
	if player.Body.X < a.HoldX {
		in = in.Press(cfg.ActionMoveRight)
	}

	dx := boss.Body.X - player.Body.X
	inView := boss.Body.X < float64(cfg.Screen.Width)
	if math.Abs(dx) <= a.Range && inView {
		facing := cfg.DirectionRight
		if dx < 0 {
			facing = cfg.DirectionLeft
		}
		if facing != player.Direction {
			in = turnToward(in, facing)
		}
		// Hold shoot except on the release tick.
		if a.ticks%a.TapPeriod != 0 {
			in = in.Press(cfg.ActionShoot)
		}
	}
	return in
}

func turnToward(in Input, facing float64) Input {
	in[cfg.ActionMoveLeft], in[cfg.ActionMoveRight] = false, false
	if facing == cfg.DirectionLeft {
		return in.Press(cfg.ActionMoveLeft)
	}
	return in.Press(cfg.ActionMoveRight)
}
