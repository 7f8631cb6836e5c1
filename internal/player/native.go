package player

// NativeState is the status reported by the underlying video player.
// Values follow the YouTube IFrame API.
type NativeState int

const (
	NativeUnstarted NativeState = -1
	NativeEnded     NativeState = 0
	NativePlaying   NativeState = 1
	NativePaused    NativeState = 2
	NativeBuffering NativeState = 3
	NativeCued      NativeState = 5
)

// String returns the native state name for debugging.
func (s NativeState) String() string {
	switch s {
	case NativeUnstarted:
		return "unstarted"
	case NativeEnded:
		return "ended"
	case NativePlaying:
		return "playing"
	case NativePaused:
		return "paused"
	case NativeBuffering:
		return "buffering"
	case NativeCued:
		return "cued"
	default:
		return "unknown"
	}
}

// PlayState maps a native status onto the three observed states.
func (s NativeState) PlayState() PlayState {
	switch s {
	case NativeUnstarted, NativeBuffering:
		return Loading
	case NativePlaying:
		return Playing
	case NativeCued, NativeEnded, NativePaused:
		return Paused
	default:
		return Paused
	}
}
