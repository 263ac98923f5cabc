package core

// Action represents a semantic player action, abstracted from physical key presses.
// The world advances one turn per action.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveNorth        // Up, k
	ActionMoveSouth        // Down, j
	ActionMoveWest         // Left, h
	ActionMoveEast         // Right, l
	ActionWait             // Space, .
	ActionUse              // g - use the item underfoot
	ActionDescend          // > - take the stairs
	ActionReveal           // m - toggle the full map
	ActionQuit             // q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveNorth:
		return "North"
	case ActionMoveSouth:
		return "South"
	case ActionMoveWest:
		return "West"
	case ActionMoveEast:
		return "East"
	case ActionWait:
		return "Wait"
	case ActionUse:
		return "Use"
	case ActionDescend:
		return "Descend"
	case ActionReveal:
		return "Reveal"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) step for movement actions and (0, 0) otherwise.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionMoveNorth:
		return 0, -1
	case ActionMoveSouth:
		return 0, 1
	case ActionMoveWest:
		return -1, 0
	case ActionMoveEast:
		return 1, 0
	default:
		return 0, 0
	}
}

// IsMove reports whether the action moves the player.
func (a Action) IsMove() bool {
	dx, dy := a.Delta()
	return dx != 0 || dy != 0
}
