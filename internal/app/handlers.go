package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/radiofree/internal/keymap"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.resolver.Resolve(msg.String())
	if m.ShowHelp && action != keymap.ActionQuit {
		m.ShowHelp = false
		return m, nil
	}

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
		return m, nil
	case keymap.ActionToggle:
		return m, m.doCmd(m.radio.Toggle)
	case keymap.ActionNextChannel:
		return m, m.doCmd(m.radio.NextChannel)
	case keymap.ActionPrevChannel:
		return m, m.doCmd(m.radio.PreviousChannel)
	case keymap.ActionOpenLivestream:
		return m, m.doCmd(m.open)
	case keymap.ActionVolumeUp:
		return m, m.doCmd(func() { m.radio.AdjustVolume(volumeStep) })
	case keymap.ActionVolumeDown:
		return m, m.doCmd(func() { m.radio.AdjustVolume(-volumeStep) })
	case keymap.ActionMoveUp:
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case keymap.ActionMoveDown:
		if m.Cursor < len(m.Snapshot.Channels)-1 {
			m.Cursor++
		}
		return m, nil
	case keymap.ActionSelect:
		i := m.Cursor
		return m, m.doCmd(func() { m.radio.JumpTo(i) })
	}
	return m, nil
}
