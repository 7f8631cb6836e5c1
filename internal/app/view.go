package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/radiofree/internal/keymap"
	"github.com/llehouerou/radiofree/internal/player"
	"github.com/llehouerou/radiofree/internal/ui/styles"
)

const (
	appTitle     = "Radio Free"
	defaultWidth = 60
	// header, status, byline, blank, list border, error, footer
	chromeHeight = 9
)

// View implements tea.Model.
func (m Model) View() string {
	if m.ShowHelp {
		return m.renderHelp()
	}

	width := m.Width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{
		m.renderHeader(),
		m.renderStatus(width),
		m.renderChannels(width),
	}
	if m.ErrorMsg != "" {
		sections = append(sections, styles.T().S().Error.Render(truncate(m.ErrorMsg, width)))
	}
	sections = append(sections, m.renderFooter(width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	t := styles.T()
	return styles.Gradient(appTitle, t.Primary, t.Secondary)
}

// stateLabel mirrors the toolbar badge: live, "..." while loading, paused.
func (m Model) stateLabel() string {
	s := styles.T().S()
	switch m.Snapshot.State {
	case player.Playing:
		return s.Live.Render("▶ LIVE")
	case player.Loading:
		return s.Loading.Render(m.Spinner.View())
	}
	return s.Paused.Render("❚❚ paused")
}

func (m Model) renderStatus(width int) string {
	s := styles.T().S()

	title := m.Snapshot.Title
	if title == "" {
		title = m.Snapshot.Channel
	}
	label := m.stateLabel()
	line := label + " " + s.Title.Render(truncate(title, width-lipgloss.Width(label)-1))

	var by []string
	if m.Snapshot.User != "" {
		by = append(by, "by "+m.Snapshot.User)
	}
	if !m.LiveSince.IsZero() {
		by = append(by, "live since "+humanize.RelTime(m.LiveSince, m.Now, "ago", "from now"))
	}
	by = append(by, fmt.Sprintf("vol %d%%", m.Snapshot.Volume))

	return line + "\n" + s.Muted.Render(truncate(strings.Join(by, " · "), width))
}

func (m Model) renderChannels(width int) string {
	s := styles.T().S()
	inner := max(width-4, 10)

	visible := len(m.Snapshot.Channels)
	if m.Height > 0 {
		visible = min(visible, max(m.Height-chromeHeight, 1))
	}
	start := scrollStart(m.Cursor, visible, len(m.Snapshot.Channels))

	lines := make([]string, 0, visible)
	for i := start; i < start+visible && i < len(m.Snapshot.Channels); i++ {
		id := m.Snapshot.Channels[i]
		name := id
		if t, ok := m.Titles[id]; ok && t.Title != "" {
			name = t.Title
		}

		marker := "  "
		style := s.Base
		if i == m.Snapshot.Index {
			marker = "♪ "
			style = s.Current
		}
		row := fmt.Sprintf("%s%2d. %s", marker, i+1, name)
		row = runewidth.FillRight(truncate(row, inner), inner)
		if i == m.Cursor {
			style = style.Inherit(s.Cursor)
		}
		lines = append(lines, style.Render(row))
	}
	if len(lines) == 0 {
		lines = append(lines, s.Subtle.Render("no channels"))
	}

	return s.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter(width int) string {
	var hints []string
	for _, a := range []keymap.Action{
		keymap.ActionToggle, keymap.ActionNextChannel, keymap.ActionPrevChannel,
		keymap.ActionOpenLivestream, keymap.ActionHelp, keymap.ActionQuit,
	} {
		keys := m.resolver.KeysFor(a)
		if len(keys) == 0 {
			continue
		}
		hints = append(hints, keyName(keys[0])+" "+actionHint(a))
	}
	return styles.T().S().Subtle.Render(truncate(strings.Join(hints, "  "), width))
}

func (m Model) renderHelp() string {
	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, ctx := range []string{"radio", "channels", "global"} {
		for _, kb := range keymap.ByContext(ctx) {
			keys := make([]string, len(kb.Keys))
			for i, k := range kb.Keys {
				keys[i] = keyName(k)
			}
			b.WriteString(runewidth.FillRight(strings.Join(keys, ", "), 16))
			b.WriteString(s.Muted.Render(kb.Description))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render("press any key"))
	return b.String()
}

func actionHint(a keymap.Action) string {
	switch a {
	case keymap.ActionToggle:
		return "play/pause"
	case keymap.ActionNextChannel:
		return "next"
	case keymap.ActionPrevChannel:
		return "prev"
	case keymap.ActionOpenLivestream:
		return "open"
	case keymap.ActionHelp:
		return "help"
	case keymap.ActionQuit:
		return "quit"
	}
	return string(a)
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// scrollStart returns the first visible row keeping cursor in view.
func scrollStart(cursor, visible, total int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	start := cursor - visible/2
	return max(0, min(start, total-visible))
}
