package mpv

import (
	"fmt"

	"github.com/wildeyedskies/go-mpv/mpv"
)

// event is the subset of libmpv events the handle reacts to.
type event int

const (
	evNone event = iota
	evShutdown
	evStartFile
	evFileLoaded
	evEndFile
	evIdle
	evPlaybackRestart
	evPropertyChange
)

// endReason says why mpv ended a file.
type endReason int

const (
	endEOF      endReason = iota
	endStop               // stop or loadfile replace, including mid-load
	endQuit               // quit command or shutdown
	endError              // the file failed
	endRedirect           // playlist expansion
)

// client is the libmpv surface used by handle.
type client interface {
	command(args ...string) error
	flag(name string) (bool, error)
	double(name string) (float64, error)
	str(name string) (string, error)
	observe(name string) error
	// wait returns the next event. The reason is only set for evEndFile.
	wait() (event, endReason)
	destroy()
}

// libmpv adapts a go-mpv instance to client.
type libmpv struct {
	m *mpv.Mpv
}

func newLibmpv(options map[string]string) (*libmpv, error) {
	m := mpv.Create()
	for name, value := range options {
		if err := m.SetOptionString(name, value); err != nil {
			m.TerminateDestroy()
			return nil, fmt.Errorf("set option %s=%s: %w", name, value, err)
		}
	}
	if err := m.Initialize(); err != nil {
		m.TerminateDestroy()
		return nil, err
	}
	return &libmpv{m: m}, nil
}

func (l *libmpv) command(args ...string) error {
	return l.m.Command(args)
}

func (l *libmpv) flag(name string) (bool, error) {
	v, err := l.m.GetProperty(name, mpv.FORMAT_FLAG)
	if err != nil {
		return false, err
	}
	b, _ := v.(bool)
	return b, nil
}

func (l *libmpv) double(name string) (float64, error) {
	v, err := l.m.GetProperty(name, mpv.FORMAT_DOUBLE)
	if err != nil {
		return 0, err
	}
	f, _ := v.(float64)
	return f, nil
}

func (l *libmpv) str(name string) (string, error) {
	v, err := l.m.GetProperty(name, mpv.FORMAT_STRING)
	if err != nil {
		return "", err
	}
	s, _ := v.(string)
	return s, nil
}

func (l *libmpv) observe(name string) error {
	return l.m.ObserveProperty(0, name, mpv.FORMAT_FLAG)
}

func (l *libmpv) wait() (event, endReason) {
	e := l.m.WaitEvent(1)
	if e == nil {
		return evNone, endEOF
	}
	switch e.Event_Id {
	case mpv.EVENT_SHUTDOWN:
		return evShutdown, endEOF
	case mpv.EVENT_START_FILE:
		return evStartFile, endEOF
	case mpv.EVENT_FILE_LOADED:
		return evFileLoaded, endEOF
	case mpv.EVENT_END_FILE:
		ef, _ := e.Data.(mpv.EventEndFile)
		return evEndFile, reasonOf(ef.Reason)
	case mpv.EVENT_IDLE:
		return evIdle, endEOF
	case mpv.EVENT_PLAYBACK_RESTART:
		return evPlaybackRestart, endEOF
	case mpv.EVENT_PROPERTY_CHANGE:
		return evPropertyChange, endEOF
	default:
		return evNone, endEOF
	}
}

func reasonOf(r mpv.EndFileReason) endReason {
	switch r {
	case mpv.END_FILE_REASON_STOP:
		return endStop
	case mpv.END_FILE_REASON_QUIT:
		return endQuit
	case mpv.END_FILE_REASON_ERROR:
		return endError
	case mpv.END_FILE_REASON_REDIRECT:
		return endRedirect
	default:
		return endEOF
	}
}

func (l *libmpv) destroy() {
	l.m.TerminateDestroy()
}
