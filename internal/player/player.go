// Package player mediates between playback intent and an asynchronous
// native video player that must be constructed before it accepts commands.
package player

import (
	"math"

	"github.com/rs/zerolog"
)

const (
	DefaultVolume    = 50
	DefaultContainer = "player"
)

// Player owns at most one native handle for the lifetime of the process.
//
// Player is not safe for concurrent use. All methods, and all backend
// callbacks, must run on the host loop.
type Player struct {
	backend   Backend
	container string
	options   Options
	volume    int
	logger    zerolog.Logger

	videoID  string
	autoPlay bool
	loaded   bool
	creating bool
	state    PlayState
	handle   Handle

	stateListeners []func(PlayState)
	errorListeners []func(Error)
}

// Option configures a Player.
type Option func(*Player)

// WithVolume sets the volume applied when the handle becomes ready.
func WithVolume(level int) Option {
	return func(p *Player) { p.volume = max(0, min(level, 100)) }
}

// WithContainer sets the container identifier passed to the backend.
func WithContainer(id string) Option {
	return func(p *Player) { p.container = id }
}

// WithOptions overrides the native UI options.
func WithOptions(o Options) Option {
	return func(p *Player) { p.options = o }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// New creates a Player. No handle is constructed until a video id is set
// and NotifyHostReady has been called.
func New(backend Backend, opts ...Option) *Player {
	p := &Player{
		backend:   backend,
		container: DefaultContainer,
		options:   DefaultOptions(),
		volume:    DefaultVolume,
		logger:    zerolog.Nop(),
		state:     Paused,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// OnState registers a listener for state changes.
func (p *Player) OnState(fn func(PlayState)) {
	p.stateListeners = append(p.stateListeners, fn)
}

// OnError registers a listener for native errors.
func (p *Player) OnError(fn func(Error)) {
	p.errorListeners = append(p.errorListeners, fn)
}

// State returns the observed playback state.
func (p *Player) State() PlayState { return p.state }

// AutoPlay reports whether playback was requested.
func (p *Player) AutoPlay() bool { return p.autoPlay }

// VideoID returns the current or pending video id.
func (p *Player) VideoID() string { return p.videoID }

// HasHandle reports whether the native player has been constructed.
func (p *Player) HasHandle() bool { return p.handle != nil }

// URL returns the video URL of the loaded video.
func (p *Player) URL() (string, bool) {
	if p.handle == nil {
		return "", false
	}
	return p.handle.VideoURL(), true
}

// Title returns the title of the loaded video.
func (p *Player) Title() (string, bool) {
	if p.handle == nil {
		return "", false
	}
	return p.handle.VideoData().Title, true
}

// User returns the author of the loaded video.
func (p *Player) User() (string, bool) {
	if p.handle == nil {
		return "", false
	}
	return p.handle.VideoData().Author, true
}

func (p *Player) setState(s PlayState) {
	if p.state == s {
		return
	}
	p.state = s
	for _, fn := range p.stateListeners {
		fn(s)
	}
}

func (p *Player) emitError(e Error) {
	for _, fn := range p.errorListeners {
		fn(e)
	}
}

// seekToLiveEdge moves to the newest position of a live stream and plays.
func (p *Player) seekToLiveEdge() {
	p.handle.SeekTo(math.Inf(1), true)
	p.handle.PlayVideo()
}
