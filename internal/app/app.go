// Package app is the terminal UI of the radio.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/radiofree/internal/keymap"
	"github.com/llehouerou/radiofree/internal/player"
	"github.com/llehouerou/radiofree/internal/radio"
	"github.com/llehouerou/radiofree/internal/state"
)

const volumeStep = 5

// Radio is the part of radio.Radio the TUI drives. It is only touched on
// the host loop.
type Radio interface {
	Toggle()
	NextChannel()
	PreviousChannel()
	JumpTo(i int)
	AdjustVolume(delta int) int
	State() player.PlayState
	Channel() string
	Index() int
	Channels() []string
	Title() (string, bool)
	User() (string, bool)
	URL() (string, bool)
	Volume() int
}

// Runner executes functions on the host loop.
type Runner interface {
	Do(fn func()) error
}

// Snapshot is a copy of the radio state taken on the host loop.
type Snapshot struct {
	State    player.PlayState
	Channel  string
	Index    int
	Channels []string
	Title    string
	User     string
	URL      string
	Volume   int
}

// Deps are the collaborators of the TUI.
type Deps struct {
	Radio  Radio
	Runner Runner
	Sub    *radio.Subscription
	// OpenLivestream opens the current stream and pauses. Runs on the loop.
	OpenLivestream func()
	Titles         map[string]state.ChannelTitle
	Logger         zerolog.Logger
}

// Model is the root application model.
type Model struct {
	radio    Radio
	run      Runner
	sub      *radio.Subscription
	open     func()
	resolver *keymap.Resolver
	logger   zerolog.Logger

	Snapshot  Snapshot
	Titles    map[string]state.ChannelTitle
	Cursor    int
	LiveSince time.Time
	Now       time.Time
	ErrorMsg  string
	ShowHelp  bool
	Spinner   spinner.Model
	Width     int
	Height    int
}

// New creates the model. The first snapshot is taken synchronously.
func New(d Deps) Model {
	titles := d.Titles
	if titles == nil {
		titles = make(map[string]state.ChannelTitle)
	}
	open := d.OpenLivestream
	if open == nil {
		open = func() {}
	}

	m := Model{
		radio:    d.Radio,
		run:      d.Runner,
		sub:      d.Sub,
		open:     open,
		resolver: keymap.NewResolver(keymap.All),
		logger:   d.Logger,
		Titles:   titles,
		Now:      time.Now(),
		Spinner:  spinner.New(spinner.WithSpinner(spinner.Ellipsis)),
	}
	for _, c := range m.resolver.Conflicts() {
		m.logger.Warn().Stringer("binding", c).Msg("key bound to several actions")
	}
	if snap, err := m.snapshot(); err == nil {
		m.Snapshot = snap
		m.Cursor = max(snap.Index, 0)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.WatchRadio(), TickCmd(), m.Spinner.Tick)
}

// snapshot copies the radio state on the host loop.
func (m Model) snapshot() (Snapshot, error) {
	var s Snapshot
	err := m.run.Do(func() {
		s = Snapshot{
			State:    m.radio.State(),
			Channel:  m.radio.Channel(),
			Index:    m.radio.Index(),
			Channels: m.radio.Channels(),
			Volume:   m.radio.Volume(),
		}
		s.Title, _ = m.radio.Title()
		s.User, _ = m.radio.User()
		s.URL, _ = m.radio.URL()
	})
	return s, err
}
