package mpv

import (
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/llehouerou/radiofree/internal/player"
)

// uploaderKeys are tried in order to find the stream's channel name.
var uploaderKeys = []string{
	"metadata/by-key/uploader",
	"metadata/by-key/channel",
	"metadata/by-key/artist",
}

// handle is a player.Handle over one mpv instance.
//
// All fields except done are owned by the host loop. The event goroutine
// only reaches them through post.
type handle struct {
	c      client
	post   func(func())
	cb     player.Callbacks
	logger zerolog.Logger

	videoID string
	loaded  bool // current file reached FILE_LOADED
	stopped bool // StopVideo was called
	ended   bool // current file ended on its own

	done chan struct{}
}

func newHandle(c client, post func(func()), cb player.Callbacks, logger zerolog.Logger) *handle {
	return &handle{
		c:      c,
		post:   post,
		cb:     cb,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// run forwards libmpv events to the host loop until shutdown.
func (h *handle) run() {
	defer close(h.done)
	defer h.c.destroy()
	for {
		ev, reason := h.c.wait()
		switch ev {
		case evShutdown:
			return
		case evNone:
		case evFileLoaded:
			h.post(h.fileLoaded)
		case evEndFile:
			h.post(func() { h.fileEnded(reason) })
		case evStartFile, evIdle, evPlaybackRestart, evPropertyChange:
			h.post(h.stateChanged)
		}
	}
}

func (h *handle) close() {
	if err := h.c.command("quit"); err != nil {
		h.logger.Debug().Err(err).Msg("mpv quit")
	}
	<-h.done
}

func (h *handle) fileLoaded() {
	h.loaded = true
	h.ended = false
	h.stateChanged()
}

// fileEnded handles END_FILE. Files ended by our own stop or replace,
// including a replace that interrupts a load, end with endStop and are
// not errors.
func (h *handle) fileEnded(reason endReason) {
	switch reason {
	case endStop, endQuit, endRedirect:
		h.stateChanged()
		return
	case endError:
		code := player.CodeInternal
		if !h.loaded {
			code = player.CodeNotFound
		}
		h.logger.Debug().Str("video_id", h.videoID).Bool("loaded", h.loaded).Msg("stream failed")
		h.loaded = false
		h.ended = true
		h.cb.OnError(code)
		return
	case endEOF:
	}
	if h.stopped {
		h.stateChanged()
		return
	}
	if !h.loaded {
		h.logger.Debug().Str("video_id", h.videoID).Msg("stream ended before loading")
		h.cb.OnError(player.CodeNotFound)
		return
	}
	h.loaded = false
	h.ended = true
	h.stateChanged()
}

func (h *handle) stateChanged() {
	if h.cb.OnStateChange != nil {
		h.cb.OnStateChange()
	}
}

// fail reports a control failure on the next loop turn, outside the
// caller's stack.
func (h *handle) fail(op string, err error) {
	h.logger.Warn().Err(err).Str("op", op).Str("video_id", h.videoID).Msg("mpv command failed")
	h.post(func() { h.cb.OnError(player.CodeInternal) })
}

func (h *handle) load(id string) error {
	h.videoID = id
	h.loaded = false
	h.ended = false
	return h.c.command("loadfile", watchURL+id, "replace")
}

func (h *handle) setPause(paused bool) error {
	return h.c.command("set", "pause", yesNo(paused))
}

// PlayVideo implements player.Handle. A stopped or ended stream is
// reloaded, which starts it at the live edge.
func (h *handle) PlayVideo() {
	if err := h.setPause(false); err != nil {
		h.fail("play", err)
		return
	}
	if h.stopped || h.ended {
		h.stopped = false
		if err := h.load(h.videoID); err != nil {
			h.fail("play", err)
		}
	}
}

// StopVideo implements player.Handle.
func (h *handle) StopVideo() {
	if h.stopped {
		return
	}
	h.stopped = true
	h.loaded = false
	if err := h.c.command("stop"); err != nil {
		h.fail("stop", err)
	}
}

// SeekTo implements player.Handle. +Inf seeks to the live edge.
func (h *handle) SeekTo(seconds float64, _ bool) {
	if !h.loaded {
		// A fresh load already starts at the live edge.
		return
	}
	if math.IsInf(seconds, 1) {
		d, err := h.c.double("duration")
		if err != nil || d <= 0 {
			if err := h.c.command("seek", "100", "absolute-percent"); err != nil {
				h.fail("seek", err)
			}
			return
		}
		seconds = d
	}
	if err := h.c.command("seek", strconv.FormatFloat(seconds, 'f', 3, 64), "absolute"); err != nil {
		h.fail("seek", err)
	}
}

// SetVolume implements player.Handle.
func (h *handle) SetVolume(level int) {
	if err := h.c.command("set", "volume", strconv.Itoa(level)); err != nil {
		h.fail("volume", err)
	}
}

// LoadVideoByID implements player.Handle. Like the embedded player, the
// new video starts playing immediately.
func (h *handle) LoadVideoByID(id string) {
	h.stopped = false
	if err := h.setPause(false); err != nil {
		h.fail("load", err)
		return
	}
	if err := h.load(id); err != nil {
		h.fail("load", err)
	}
}

// PlayerState implements player.Handle.
func (h *handle) PlayerState() player.NativeState {
	switch {
	case h.stopped:
		return player.NativeCued
	case h.ended:
		return player.NativeEnded
	case !h.loaded:
		return player.NativeUnstarted
	}
	if idle, _ := h.c.flag("idle-active"); idle {
		return player.NativeEnded
	}
	if cache, _ := h.c.flag("paused-for-cache"); cache {
		return player.NativeBuffering
	}
	if seeking, _ := h.c.flag("seeking"); seeking {
		return player.NativeBuffering
	}
	if paused, _ := h.c.flag("pause"); paused {
		return player.NativePaused
	}
	return player.NativePlaying
}

// VideoURL implements player.Handle.
func (h *handle) VideoURL() string {
	return watchURL + h.videoID
}

// VideoData implements player.Handle.
func (h *handle) VideoData() player.VideoData {
	data := player.VideoData{VideoID: h.videoID}
	if !h.loaded {
		return data
	}
	data.Title, _ = h.c.str("media-title")
	for _, key := range uploaderKeys {
		if author, err := h.c.str(key); err == nil && author != "" {
			data.Author = author
			break
		}
	}
	return data
}

// Verify handle implements player.Handle at compile time.
var _ player.Handle = (*handle)(nil)
