package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionCrouch
	ActionJump
	ActionShoot
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionCrouch:
		return "crouch"
	case ActionJump:
		return "jump"
	case ActionShoot:
		return "shoot"
	}
	return "none"
}
