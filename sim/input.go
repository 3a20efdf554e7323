package sim

import cfg "github.com/automoto/busterclone/config"

// Input is the set of actions held during one tick.
type Input [cfg.ActionCount]bool

// Press marks ids as held and returns the updated input.
func (in Input) Press(ids ...cfg.ActionID) Input {
	for _, id := range ids {
		if id > cfg.ActionNone && id < cfg.ActionCount {
			in[id] = true
		}
	}
	return in
}

// Held reports whether id is held.
func (in Input) Held(id cfg.ActionID) bool {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return false
	}
	return in[id]
}
