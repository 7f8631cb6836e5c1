// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Radio actions, named after the desktop commands
	ActionToggle         Action = "radio:toggle"
	ActionNextChannel    Action = "radio:next"
	ActionPrevChannel    Action = "radio:prev"
	ActionOpenLivestream Action = "radio:open"
	ActionVolumeUp       Action = "volume_up"
	ActionVolumeDown     Action = "volume_down"

	// Channel list
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select" // enter - tune to the highlighted channel
)
