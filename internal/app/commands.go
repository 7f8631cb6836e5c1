package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchRadio waits for the next radio event and converts it to a tea.Msg.
func (m Model) WatchRadio() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-m.sub.StateChanged:
			snap, err := m.snapshot()
			if err != nil {
				return RadioClosedMsg{}
			}
			return RadioStateMsg{Event: e, Snapshot: snap}
		case e := <-m.sub.ChannelChanged:
			snap, err := m.snapshot()
			if err != nil {
				return RadioClosedMsg{}
			}
			return RadioChannelMsg{Event: e, Snapshot: snap}
		case e := <-m.sub.Error:
			return RadioErrorMsg{Event: e}
		case <-m.sub.Done:
			return RadioClosedMsg{}
		}
	}
}

// doCmd runs fn on the host loop and returns a fresh snapshot.
func (m Model) doCmd(fn func()) tea.Cmd {
	return func() tea.Msg {
		if err := m.run.Do(fn); err != nil {
			return RadioClosedMsg{}
		}
		snap, err := m.snapshot()
		if err != nil {
			return RadioClosedMsg{}
		}
		return SnapshotMsg{Snapshot: snap}
	}
}
