// Package radio rotates a Player through a fixed list of livestream channels.
package radio

import (
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/llehouerou/radiofree/internal/player"
)

// ErrNoChannels is returned when a radio is created without channels.
var ErrNoChannels = errors.New("radio: no channels")

// Radio owns the channel rotation and forwards commands and events
// between the UI and the Player.
//
// Like Player, Radio must only be used from the host loop. Subscribe and
// Close may be called from any goroutine.
type Radio struct {
	player   *player.Player
	channels []string
	index    int
	state    player.PlayState

	maxSkips int
	skips    int

	logger zerolog.Logger

	stateListeners   []func(StateChange)
	channelListeners []func(ChannelChange)
	errorListeners   []func(ErrorEvent)

	subs   []*Subscription
	subsMu sync.Mutex
	closed bool
}

// Option configures a Radio.
type Option func(*Radio)

// WithStartIndex starts the rotation at index i. Out of range values
// are clamped.
func WithStartIndex(i int) Option {
	return func(r *Radio) { r.index = i }
}

// WithMaxConsecutiveSkips limits error-driven skips that happen without
// reaching Playing in between. Zero means unlimited.
func WithMaxConsecutiveSkips(n int) Option {
	return func(r *Radio) { r.maxSkips = max(0, n) }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Radio) { r.logger = l }
}

// New creates a radio over p and tunes it to the starting channel.
func New(p *player.Player, channels []string, opts ...Option) (*Radio, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	r := &Radio{
		player:   p,
		channels: slices.Clone(channels),
		state:    p.State(),
		logger:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	r.index = max(0, min(r.index, len(r.channels)-1))

	p.OnState(r.handleState)
	p.OnError(r.handleError)

	p.SetVideoID(r.channels[r.index])
	return r, nil
}

// NextChannel advances the cursor, wrapping to the first channel.
func (r *Radio) NextChannel() {
	r.skips = 0
	r.step(1)
}

// PreviousChannel moves the cursor back, wrapping to the last channel.
func (r *Radio) PreviousChannel() {
	r.skips = 0
	r.step(-1)
}

// JumpTo moves the cursor to index i. Jumping to the channel already
// playing is a no-op.
func (r *Radio) JumpTo(i int) {
	if i < 0 || i >= len(r.channels) {
		return
	}
	if i == r.index && r.Channel() == r.channels[i] {
		return
	}
	r.skips = 0
	r.index = i
	r.tune(r.channels[i])
}

// SetChannel plays id without moving the cursor. Setting the current
// channel is a no-op.
func (r *Radio) SetChannel(id string) {
	if id == r.Channel() {
		return
	}
	r.skips = 0
	r.player.SetVideoID(id)
	r.emitChannel(ChannelChange{Channel: id, Index: slices.Index(r.channels, id)})
}

func (r *Radio) step(delta int) {
	n := len(r.channels)
	r.index = ((r.index+delta)%n + n) % n
	r.tune(r.channels[r.index])
}

func (r *Radio) tune(id string) {
	r.player.SetVideoID(id)
	r.emitChannel(ChannelChange{Channel: id, Index: r.index})
}

// Toggle toggles playback.
func (r *Radio) Toggle() { r.player.Toggle() }

// Play requests playback.
func (r *Radio) Play() { r.player.Play() }

// Pause stops playback.
func (r *Radio) Pause() { r.player.Pause() }

// SetVolume sets the player volume (0 to 100).
func (r *Radio) SetVolume(level int) { r.player.SetVolume(level) }

// AdjustVolume changes the player volume by delta and returns the new level.
func (r *Radio) AdjustVolume(delta int) int { return r.player.AdjustVolume(delta) }

// Volume returns the player volume.
func (r *Radio) Volume() int { return r.player.Volume() }

// State returns the observed playback state.
func (r *Radio) State() player.PlayState { return r.player.State() }

// Channel returns the channel the player is tuned to.
func (r *Radio) Channel() string { return r.player.VideoID() }

// Index returns the cursor position.
func (r *Radio) Index() int { return r.index }

// Channels returns a copy of the channel list.
func (r *Radio) Channels() []string { return slices.Clone(r.channels) }

// URL returns the URL of the current stream, if known.
func (r *Radio) URL() (string, bool) { return r.player.URL() }

// Title returns the title of the current stream, if known.
func (r *Radio) Title() (string, bool) { return r.player.Title() }

// User returns the author of the current stream, if known.
func (r *Radio) User() (string, bool) { return r.player.User() }

func (r *Radio) handleState(s player.PlayState) {
	prev := r.state
	r.state = s
	if s == player.Playing {
		r.skips = 0
	}
	r.emitState(StateChange{Previous: prev, Current: s})
}

// handleError skips to the next channel. Every player error is treated as
// "this stream is unavailable".
func (r *Radio) handleError(e player.Error) {
	ev := ErrorEvent{Err: e, Channel: r.Channel(), Index: r.index}

	if r.maxSkips > 0 && r.skips >= r.maxSkips {
		ev.Exhausted = true
		r.logger.Warn().Stringer("error", e).Int("skips", r.skips).Msg("skip limit reached, pausing")
		r.emitError(ev)
		r.player.Pause()
		return
	}

	r.emitError(ev)
	r.skips++
	r.logger.Info().Stringer("error", e).Str("channel", ev.Channel).Msg("skipping unavailable channel")
	r.step(1)
}
