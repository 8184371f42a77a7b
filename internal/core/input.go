package core

// Action represents a semantic player action, abstracted from physical key presses.
// This allows the engine bindings to work with intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow, k - move cursor up
	ActionDown             // S, Down arrow, j - move cursor down
	ActionLeft             // A, Left arrow, h - move cursor left
	ActionRight            // D, Right arrow, l - move cursor right
	ActionFlip             // Space, Enter - tap the tile under the cursor
	ActionHint             // H - free hint, or paid hint when none are left
	ActionShuffle          // X - buy a shuffle
	ActionExtraTime        // T - buy extra time
	ActionNext             // N - next level after completion
	ActionRestart          // R - restart current level
	ActionDismiss          // Esc - close the insufficient currency dialog
	ActionBonus            // A - take a bonus break for a reward
	ActionBack             // B - back to theme selection
	ActionQuit             // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFlip:
		return "Flip"
	case ActionHint:
		return "Hint"
	case ActionShuffle:
		return "Shuffle"
	case ActionExtraTime:
		return "ExtraTime"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionDismiss:
		return "Dismiss"
	case ActionBonus:
		return "Bonus"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
