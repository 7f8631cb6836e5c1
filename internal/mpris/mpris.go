// Package mpris exposes the radio over the MPRIS D-Bus interface so that
// desktop media keys and applets can control it.
package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/llehouerou/radiofree/internal/player"
)

const (
	busName  = "radiofree"
	identity = "Radio Free"
)

// Controller is the part of radio.Radio driven by MPRIS.
type Controller interface {
	Play()
	Pause()
	Toggle()
	NextChannel()
	PreviousChannel()
	SetVolume(level int)
	Volume() int
	State() player.PlayState
	Channel() string
	Title() (string, bool)
	User() (string, bool)
	URL() (string, bool)
}

// Runner executes functions on the goroutine that owns the Controller.
type Runner interface {
	Do(fn func()) error
}

// Track is a snapshot of what is playing.
type Track struct {
	ID     string
	Title  string
	Artist string
	URL    string
}

// bridge serializes D-Bus calls onto the host loop.
type bridge struct {
	ctrl Controller
	run  Runner
}

func (b *bridge) do(fn func(Controller)) error {
	return b.run.Do(func() { fn(b.ctrl) })
}

func (b *bridge) state() (player.PlayState, error) {
	var s player.PlayState
	err := b.do(func(c Controller) { s = c.State() })
	return s, err
}

func (b *bridge) volume() (int, error) {
	var v int
	err := b.do(func(c Controller) { v = c.Volume() })
	return v, err
}

func (b *bridge) track() (Track, error) {
	var t Track
	err := b.do(func(c Controller) {
		t.ID = c.Channel()
		t.Title, _ = c.Title()
		t.Artist, _ = c.User()
		t.URL, _ = c.URL()
	})
	return t, err
}

// play resumes playback. MPRIS Play on a playing player is a no-op.
func (b *bridge) play() error {
	return b.do(func(c Controller) {
		if c.State() == player.Paused {
			c.Play()
		}
	})
}

func formatTrackID(channel string) string {
	h := fnv.New64a()
	h.Write([]byte(channel))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

// volumeToLevel maps an MPRIS volume (0.0 to 1.0) to a player level.
func volumeToLevel(v float64) int {
	return int(max(0, min(v, 1))*100 + 0.5)
}
