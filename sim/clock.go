package sim

import (
	"time"

	"github.com/automoto/busterclone/components"
)

type (
	Dice  = components.Dice
	Clock = components.Clock
)

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameClock is a virtual clock that moves a fixed step per Advance.
type FrameClock struct {
	now  time.Time
	step time.Duration
}

// NewFrameClock starts at start and advances by step.
func NewFrameClock(start time.Time, step time.Duration) *FrameClock {
	return &FrameClock{now: start, step: step}
}

func (c *FrameClock) Now() time.Time { return c.now }

func (c *FrameClock) Advance() {
	c.now = c.now.Add(c.step)
}
