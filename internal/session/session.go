// Package session restores the radio where it was left and records what
// it plays.
package session

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/radiofree/internal/errmsg"
	"github.com/llehouerou/radiofree/internal/player"
	"github.com/llehouerou/radiofree/internal/radio"
	"github.com/llehouerou/radiofree/internal/state"
)

// Radio is the part of radio.Radio the recorder observes.
type Radio interface {
	OnState(fn func(radio.StateChange))
	OnChannel(fn func(radio.ChannelChange))
	Channel() string
	Index() int
	Volume() int
	Title() (string, bool)
	User() (string, bool)
}

// Resume holds the startup values derived from saved state.
type Resume struct {
	Index  int
	Volume int
}

// Restore computes where to start. Saved values are ignored when resume
// is false or when they no longer fit the channel list.
func Restore(store state.Interface, channels []string, volume int, resume bool, logger zerolog.Logger) Resume {
	r := Resume{Volume: volume}
	if !resume {
		return r
	}

	saved, err := store.GetRadio()
	if err != nil {
		logger.Warn().Err(err).Msg(errmsg.Format(errmsg.OpStateLoad, err))
		return r
	}
	if i, ok := saved.Resolve(channels); ok {
		r.Index = i
	}
	if saved != nil && saved.Volume >= 0 {
		r.Volume = min(saved.Volume, 100)
	}
	return r
}

// Recorder saves the radio position on every channel change and the stream
// title whenever a stream goes live. All methods run on the host loop.
type Recorder struct {
	radio  Radio
	store  state.Interface
	logger zerolog.Logger
}

// Attach registers a Recorder on r.
func Attach(r Radio, store state.Interface, logger zerolog.Logger) *Recorder {
	rec := &Recorder{radio: r, store: store, logger: logger}
	r.OnChannel(func(radio.ChannelChange) { rec.Save() })
	r.OnState(rec.handleState)
	return rec
}

// Save schedules a write of the current position and volume.
func (rec *Recorder) Save() {
	rec.store.SaveRadio(state.RadioState{
		ChannelIndex: max(rec.radio.Index(), 0),
		ChannelID:    rec.radio.Channel(),
		Volume:       rec.radio.Volume(),
	})
}

func (rec *Recorder) handleState(e radio.StateChange) {
	if e.Current != player.Playing {
		return
	}
	title, ok := rec.radio.Title()
	if !ok {
		return
	}
	user, _ := rec.radio.User()
	err := rec.store.SaveTitle(state.ChannelTitle{
		VideoID: rec.radio.Channel(),
		Title:   title,
		Author:  user,
	})
	if err != nil {
		rec.logger.Warn().Err(err).Msg(errmsg.Format(errmsg.OpStateSave, err))
	}
}
