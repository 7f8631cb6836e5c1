package player

// VideoData is the metadata of the video loaded in a handle.
type VideoData struct {
	VideoID string
	Title   string
	Author  string
}

// Handle is a constructed native video player.
//
// All methods are called from the host loop only.
type Handle interface {
	PlayVideo()
	StopVideo()
	SeekTo(seconds float64, allowSeekAhead bool)
	SetVolume(level int)
	LoadVideoByID(id string)
	PlayerState() NativeState
	VideoURL() string
	VideoData() VideoData
}

// Callbacks receive native player events. Backends must invoke them on the
// host loop.
type Callbacks struct {
	OnReady       func(h Handle)
	OnStateChange func()
	OnError       func(code int)
}

// Options suppress the native player's own UI.
type Options struct {
	Controls      bool
	Fullscreen    bool
	Keyboard      bool
	Annotations   bool
	Branding      bool
	Captions      bool
	Width, Height int
}

// DefaultOptions returns a background-only configuration.
func DefaultOptions() Options {
	return Options{Width: 200, Height: 200}
}

// Backend constructs native players.
type Backend interface {
	// Create starts asynchronous construction of a player in container.
	// The handle is delivered through cb.OnReady.
	Create(container, videoID string, opts Options, cb Callbacks) error
}
