// Package mpv implements player.Backend on top of libmpv.
//
// Streams are resolved through mpv's ytdl hook, so yt-dlp (or youtube-dl)
// must be installed. Video output is disabled: only audio is played.
package mpv

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/llehouerou/radiofree/internal/player"
)

const (
	watchURL      = "https://www.youtube.com/watch?v="
	defaultFormat = "bestaudio/best"
)

// observed properties trigger state-change callbacks.
var observed = []string{"pause", "paused-for-cache", "seeking", "idle-active"}

// Backend creates mpv-backed player handles.
type Backend struct {
	post   func(func())
	format string
	video  bool
	logger zerolog.Logger

	newClient func(options map[string]string) (client, error)

	mu      sync.Mutex
	handles []*handle
}

// Option configures a Backend.
type Option func(*Backend)

// WithFormat sets the ytdl format selector.
func WithFormat(f string) Option {
	return func(b *Backend) { b.format = f }
}

// WithVideo enables video output.
func WithVideo(enabled bool) Option {
	return func(b *Backend) { b.video = enabled }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Backend) { b.logger = l }
}

// New creates a backend. post must schedule a function on the host loop.
func New(post func(func()), opts ...Option) *Backend {
	b := &Backend{
		post:   post,
		format: defaultFormat,
		logger: zerolog.Nop(),
		newClient: func(options map[string]string) (client, error) {
			return newLibmpv(options)
		},
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Create implements player.Backend. The handle is reported ready as soon
// as the mpv instance is initialized, before the stream finishes loading.
func (b *Backend) Create(container, videoID string, opts player.Options, cb player.Callbacks) error {
	c, err := b.newClient(b.options(container, opts))
	if err != nil {
		return fmt.Errorf("mpv: create: %w", err)
	}

	for _, name := range observed {
		if err := c.observe(name); err != nil {
			c.destroy()
			return fmt.Errorf("mpv: observe %s: %w", name, err)
		}
	}

	h := newHandle(c, b.post, cb, b.logger)
	if err := h.load(videoID); err != nil {
		c.destroy()
		return fmt.Errorf("mpv: load %s: %w", videoID, err)
	}

	b.mu.Lock()
	b.handles = append(b.handles, h)
	b.mu.Unlock()

	go h.run()
	b.post(func() { cb.OnReady(h) })
	return nil
}

// options maps the player UI options onto mpv options.
func (b *Backend) options(container string, opts player.Options) map[string]string {
	return map[string]string{
		"title":                  container,
		"video":                  yesNo(b.video),
		"osc":                    yesNo(opts.Controls),
		"fs":                     yesNo(opts.Fullscreen),
		"input-default-bindings": yesNo(opts.Keyboard),
		"input-vo-keyboard":      yesNo(opts.Keyboard),
		"sid":                    autoNo(opts.Captions),
		"ytdl":                   "yes",
		"ytdl-format":            b.format,
		"pause":                  "yes",
		"terminal":               "no",
		"idle":                   "yes",
		"keep-open":              "no",
	}
}

// Close shuts down every mpv instance and waits for their event loops.
func (b *Backend) Close() error {
	b.mu.Lock()
	handles := b.handles
	b.handles = nil
	b.mu.Unlock()

	for _, h := range handles {
		h.close()
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func autoNo(v bool) string {
	if v {
		return "auto"
	}
	return "no"
}

// Verify Backend implements player.Backend at compile time.
var _ player.Backend = (*Backend)(nil)
