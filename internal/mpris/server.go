//go:build linux

package mpris

import (
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/radiofree/internal/player"
)

// Adapter connects the radio to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. Calls from D-Bus are
// executed on run.
func New(ctrl Controller, run Runner) (*Adapter, error) {
	b := &bridge{ctrl: ctrl, run: run}
	a := &Adapter{
		server: server.NewServer(busName, &rootAdapter{}, &playerAdapter{b: b}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return identity, nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	b *bridge
}

func (p *playerAdapter) Next() error {
	return p.b.do(Controller.NextChannel)
}

func (p *playerAdapter) Previous() error {
	return p.b.do(Controller.PreviousChannel)
}

func (p *playerAdapter) Pause() error {
	return p.b.do(Controller.Pause)
}

func (p *playerAdapter) PlayPause() error {
	return p.b.do(Controller.Toggle)
}

// Stop pauses; a live stream has no stopped position to return to.
func (p *playerAdapter) Stop() error {
	return p.b.do(Controller.Pause)
}

func (p *playerAdapter) Play() error {
	return p.b.play()
}

func (p *playerAdapter) Seek(_ types.Microseconds) error { return nil }

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s, err := p.b.state()
	if err != nil {
		return types.PlaybackStatusStopped, err
	}
	switch s {
	case player.Playing, player.Loading:
		return types.PlaybackStatusPlaying, nil
	case player.Paused:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	t, err := p.b.track()
	if err != nil || t.ID == "" {
		return types.Metadata{}, err
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(t.ID)),
		Title:   t.Title,
		Url:     t.URL,
	}
	if t.Artist != "" {
		meta.Artist = []string{t.Artist}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	v, err := p.b.volume()
	return float64(v) / 100, err
}

func (p *playerAdapter) SetVolume(v float64) error {
	level := volumeToLevel(v)
	return p.b.do(func(c Controller) { c.SetVolume(level) })
}

func (p *playerAdapter) Position() (int64, error) { return 0, nil }

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) { return true, nil }

func (p *playerAdapter) CanGoPrevious() (bool, error) { return true, nil }

func (p *playerAdapter) CanPlay() (bool, error) { return true, nil }

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) { return false, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }
