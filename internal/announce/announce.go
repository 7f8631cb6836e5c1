// Package announce notifies the user when a stream goes live.
//
// At most one notification is shown per channel visit and per cooldown
// period. Changing channel re-arms the announcement; pausing withdraws
// the notification on screen.
package announce

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/radiofree/internal/errmsg"
	"github.com/llehouerou/radiofree/internal/host"
	"github.com/llehouerou/radiofree/internal/notify"
	"github.com/llehouerou/radiofree/internal/player"
	"github.com/llehouerou/radiofree/internal/radio"
)

const (
	DefaultCooldown = 60 * time.Second
	ActionOpen      = "open"
	fallbackTitle   = "Live now"
)

// Radio is the part of radio.Radio the announcer needs.
type Radio interface {
	OnState(fn func(radio.StateChange))
	OnChannel(fn func(radio.ChannelChange))
	Title() (string, bool)
	User() (string, bool)
	URL() (string, bool)
	Pause()
}

// Announcer shows "live now" notifications.
//
// All state is owned by the host loop.
type Announcer struct {
	radio    Radio
	notifier notify.Notifier
	loop     *host.Loop
	open     func(url string) error
	cooldown time.Duration
	timeout  int32
	icon     string
	logger   zerolog.Logger

	armed bool
	shown uint32
	timer *host.Timer
}

// Option configures an Announcer.
type Option func(*Announcer)

// WithCooldown sets the minimum time between two announcements on the
// same channel.
func WithCooldown(d time.Duration) Option {
	return func(a *Announcer) { a.cooldown = d }
}

// WithTimeout sets the notification expiry in milliseconds.
func WithTimeout(ms int32) Option {
	return func(a *Announcer) { a.timeout = ms }
}

// WithIcon sets the notification icon.
func WithIcon(icon string) Option {
	return func(a *Announcer) { a.icon = icon }
}

// WithOpener sets the function used to open the livestream page.
func WithOpener(fn func(url string) error) Option {
	return func(a *Announcer) { a.open = fn }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Announcer) { a.logger = l }
}

// New creates an announcer and registers it on r.
// It must be called before the loop starts or on the loop.
func New(r Radio, n notify.Notifier, loop *host.Loop, opts ...Option) *Announcer {
	a := &Announcer{
		radio:    r,
		notifier: n,
		loop:     loop,
		open:     func(string) error { return nil },
		cooldown: DefaultCooldown,
		timeout:  -1,
		logger:   zerolog.Nop(),
		armed:    true,
	}
	for _, o := range opts {
		o(a)
	}
	r.OnChannel(a.handleChannel)
	r.OnState(a.handleState)
	return a
}

// Run forwards notification events to the loop until ctx is done.
func (a *Announcer) Run(ctx context.Context) {
	events := a.notifier.Events()
	if events == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			a.loop.Post(func() { a.handleEvent(ev) })
		}
	}
}

// Shown returns the id of the notification on screen, or 0.
func (a *Announcer) Shown() uint32 { return a.shown }

// OpenLivestream opens the current stream's page and pauses the radio.
func (a *Announcer) OpenLivestream() {
	if url, ok := a.radio.URL(); ok {
		if err := a.open(url); err != nil {
			a.logger.Warn().Err(err).Msg(errmsg.FormatWith(errmsg.OpOpenLivestream, url, err))
		}
	}
	a.radio.Pause()
}

func (a *Announcer) handleChannel(radio.ChannelChange) {
	a.armed = true
	a.clear()
	a.timer.Stop()
	a.timer = nil
}

func (a *Announcer) handleState(e radio.StateChange) {
	switch e.Current {
	case player.Paused:
		a.clear()
	case player.Playing:
		if !a.armed {
			return
		}
		a.armed = false
		a.timer.Stop()
		a.timer = a.loop.AfterFunc(a.cooldown, func() {
			a.armed = true
			a.timer = nil
		})
		a.announce()
	case player.Loading:
	}
}

func (a *Announcer) announce() {
	title, _ := a.radio.Title()
	if title == "" {
		title = fallbackTitle
	}
	body := ""
	if user, _ := a.radio.User(); user != "" {
		body = "by " + user
	}

	id, err := a.notifier.Notify(notify.Notification{
		Title:   title,
		Body:    body,
		Icon:    a.icon,
		Timeout: a.timeout,
		Urgency: notify.UrgencyNormal,
		Actions: []notify.Action{{Key: ActionOpen, Label: "Open Livestream"}},
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg(errmsg.Format(errmsg.OpNotify, err))
		return
	}
	a.shown = id
}

func (a *Announcer) clear() {
	if a.shown == 0 {
		return
	}
	if err := a.notifier.Close(a.shown); err != nil {
		a.logger.Debug().Err(err).Uint32("id", a.shown).Msg("close notification")
	}
	a.shown = 0
}

func (a *Announcer) handleEvent(ev notify.Event) {
	if ev.ID == 0 || ev.ID != a.shown {
		return
	}
	if ev.Closed {
		a.shown = 0
		return
	}
	if ev.Action == ActionOpen {
		a.clear()
		a.OpenLivestream()
	}
}
