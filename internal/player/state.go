package player

// PlayState represents the observed playback state.
//
// The state machine has three states. Transitions are driven by caller
// intent (Play, Pause) and by the native player's state reports:
//
//	                 Play
//	┌──────────┐ ───────────────▶ ┌──────────┐  native playing  ┌──────────┐
//	│  Paused  │                  │ Loading  │ ───────────────▶ │ Playing  │
//	└──────────┘ ◀─────────────── └──────────┘ ◀─────────────── └──────────┘
//	     ▲    native cued/ended/paused          native buffering     │
//	     │                                                          │
//	     └──────────────────────────────────────────────────────────┘
//	                      native cued/ended/paused
//
// Pause moves to Paused from any state immediately, without waiting for
// the native player to confirm.
// Native errors never change the state.
//
// Repeated reports of the same state are ignored so observers see each
// distinct value once.
type PlayState int

const (
	Loading PlayState = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s PlayState) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is requested or running.
func (s PlayState) IsActive() bool {
	return s == Loading || s == Playing
}
