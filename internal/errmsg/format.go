// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackPause Op = "pause playback"
	OpPlayerCreate  Op = "create player"
	OpPlayerLoad    Op = "load stream"
	OpPlayerControl Op = "control player"
	OpChannelSkip   Op = "play channel"

	// Notifications
	OpNotify         Op = "show notification"
	OpOpenLivestream Op = "open livestream"

	// Persistence
	OpStateLoad Op = "load saved state"
	OpStateSave Op = "save state"

	// Configuration
	OpConfigLoad Op = "load configuration"

	// Desktop integration
	OpMPRISStart Op = "start media controls"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
