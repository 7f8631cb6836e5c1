package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/radiofree/internal/errmsg"
	"github.com/llehouerou/radiofree/internal/player"
	"github.com/llehouerou/radiofree/internal/state"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.Now = time.Time(msg)
		return m, TickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case RadioStateMsg:
		m.applySnapshot(msg.Snapshot)
		if msg.Event.Current == player.Playing {
			m.ErrorMsg = ""
		}
		return m, m.WatchRadio()

	case RadioChannelMsg:
		m.applySnapshot(msg.Snapshot)
		m.Cursor = max(msg.Event.Index, 0)
		return m, m.WatchRadio()

	case RadioErrorMsg:
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpChannelSkip, msg.Event.Channel, msg.Event.Err)
		if msg.Event.Exhausted {
			m.ErrorMsg += " (giving up)"
		}
		return m, m.WatchRadio()

	case SnapshotMsg:
		m.applySnapshot(msg.Snapshot)
		return m, nil

	case RadioClosedMsg:
		return m, tea.Quit
	}

	return m, nil
}

// applySnapshot stores s and tracks when the stream went live.
func (m *Model) applySnapshot(s Snapshot) {
	wasLive := m.Snapshot.State == player.Playing && m.Snapshot.Channel == s.Channel
	m.Snapshot = s

	switch {
	case s.State != player.Playing:
		m.LiveSince = time.Time{}
	case !wasLive:
		m.LiveSince = time.Now()
	}

	if s.State == player.Playing && s.Title != "" {
		m.Titles[s.Channel] = state.ChannelTitle{
			VideoID: s.Channel,
			Title:   s.Title,
			Author:  s.User,
		}
	}
}
