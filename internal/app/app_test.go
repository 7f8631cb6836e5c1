package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/radiofree/internal/host"
	"github.com/llehouerou/radiofree/internal/player"
	"github.com/llehouerou/radiofree/internal/radio"
	"github.com/llehouerou/radiofree/internal/state"
)

// inline runs functions immediately, standing in for the host loop.
type inline struct{ closed bool }

func (r *inline) Do(fn func()) error {
	if r.closed {
		return host.ErrClosed
	}
	fn()
	return nil
}

type fakeRadio struct {
	state    player.PlayState
	channels []string
	index    int
	title    string
	user     string
	volume   int
	toggles  int
	jumps    []int
}

func (r *fakeRadio) Toggle()                 { r.toggles++ }
func (r *fakeRadio) NextChannel()            { r.index = (r.index + 1) % len(r.channels) }
func (r *fakeRadio) PreviousChannel()        { r.index = (r.index + len(r.channels) - 1) % len(r.channels) }
func (r *fakeRadio) JumpTo(i int)            { r.jumps = append(r.jumps, i); r.index = i }
func (r *fakeRadio) State() player.PlayState { return r.state }
func (r *fakeRadio) Channel() string         { return r.channels[r.index] }
func (r *fakeRadio) Index() int              { return r.index }
func (r *fakeRadio) Channels() []string      { return r.channels }
func (r *fakeRadio) Title() (string, bool)   { return r.title, r.title != "" }
func (r *fakeRadio) User() (string, bool)    { return r.user, r.user != "" }
func (r *fakeRadio) URL() (string, bool) {
	return "https://www.youtube.com/watch?v=" + r.Channel(), true
}
func (r *fakeRadio) Volume() int { return r.volume }

func (r *fakeRadio) AdjustVolume(delta int) int {
	r.volume = max(0, min(r.volume+delta, 100))
	return r.volume
}

func newTestModel(t *testing.T) (Model, *fakeRadio, *int) {
	t.Helper()
	r := &fakeRadio{state: player.Paused, channels: []string{"aaa", "bbb", "ccc"}, volume: 50}
	opened := 0
	m := New(Deps{
		Radio:          r,
		Runner:         &inline{},
		OpenLivestream: func() { opened++ },
		Titles: map[string]state.ChannelTitle{
			"bbb": {VideoID: "bbb", Title: "jazz radio"},
		},
	})
	return m, r, &opened
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result, cmd
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and applies the resulting command's message.
func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	m, cmd := update(t, m, key(k))
	if cmd != nil {
		if msg := cmd(); msg != nil {
			m, _ = update(t, m, msg)
		}
	}
	return m
}

func TestNew_TakesSnapshot(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, "aaa", m.Snapshot.Channel)
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, m.Snapshot.Channels)
	assert.Equal(t, 50, m.Snapshot.Volume)
	assert.Equal(t, 0, m.Cursor)
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
}

func TestKeys_RadioCommands(t *testing.T) {
	m, r, opened := newTestModel(t)

	m = press(t, m, " ")
	assert.Equal(t, 1, r.toggles)

	m = press(t, m, "n")
	assert.Equal(t, "bbb", m.Snapshot.Channel)

	m = press(t, m, "p")
	m = press(t, m, "p")
	assert.Equal(t, "ccc", m.Snapshot.Channel)

	m = press(t, m, "o")
	assert.Equal(t, 1, *opened)

	m = press(t, m, "+")
	assert.Equal(t, 55, m.Snapshot.Volume)
	m = press(t, m, "-")
	assert.Equal(t, 50, m.Snapshot.Volume)
}

func TestKeys_CursorAndSelect(t *testing.T) {
	m, r, _ := newTestModel(t)

	m = press(t, m, "k")
	assert.Equal(t, 0, m.Cursor, "cursor stays at top")

	m = press(t, m, "j")
	m = press(t, m, "j")
	m = press(t, m, "j")
	assert.Equal(t, 2, m.Cursor, "cursor stops at bottom")

	m = press(t, m, "enter")
	assert.Equal(t, []int{2}, r.jumps)
	assert.Equal(t, 2, m.Snapshot.Index)
}

func TestKeys_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestKeys_HelpDismissedByAnyKey(t *testing.T) {
	m, r, _ := newTestModel(t)

	m = press(t, m, "?")
	assert.True(t, m.ShowHelp)
	assert.Contains(t, ansi.Strip(m.View()), "Next channel")

	m = press(t, m, " ")
	assert.False(t, m.ShowHelp)
	assert.Zero(t, r.toggles, "dismissing help does not act")
}

func TestCommands_ClosedLoopQuits(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.run = &inline{closed: true}

	_, cmd := update(t, m, key("n"))
	require.NotNil(t, cmd)
	assert.IsType(t, RadioClosedMsg{}, cmd())
}

func TestUpdate_StateMsgTracksLiveSince(t *testing.T) {
	m, _, _ := newTestModel(t)

	playing := Snapshot{State: player.Playing, Channel: "aaa", Channels: m.Snapshot.Channels, Title: "lofi", User: "Lofi Girl"}
	m, _ = update(t, m, RadioStateMsg{Event: radio.StateChange{Current: player.Playing}, Snapshot: playing})
	require.False(t, m.LiveSince.IsZero())
	since := m.LiveSince

	// Same channel still playing keeps the start time.
	m, _ = update(t, m, SnapshotMsg{Snapshot: playing})
	assert.Equal(t, since, m.LiveSince)

	assert.Equal(t, "lofi", m.Titles["aaa"].Title)
	assert.Equal(t, "Lofi Girl", m.Titles["aaa"].Author)

	paused := playing
	paused.State = player.Paused
	m, _ = update(t, m, RadioStateMsg{Event: radio.StateChange{Current: player.Paused}, Snapshot: paused})
	assert.True(t, m.LiveSince.IsZero())
}

func TestUpdate_ChannelMsgMovesCursor(t *testing.T) {
	m, _, _ := newTestModel(t)

	snap := m.Snapshot
	snap.Index = 2
	snap.Channel = "ccc"
	m, cmd := update(t, m, RadioChannelMsg{Event: radio.ChannelChange{Channel: "ccc", Index: 2}, Snapshot: snap})

	assert.Equal(t, 2, m.Cursor)
	assert.Nil(t, cmd, "no subscription to watch")
}

func TestUpdate_ErrorMsg(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, RadioErrorMsg{Event: radio.ErrorEvent{Err: player.ErrNotFound, Channel: "aaa"}})
	assert.Contains(t, m.ErrorMsg, "aaa")
	assert.Contains(t, m.ErrorMsg, player.ErrNotFound.Error())

	m, _ = update(t, m, RadioErrorMsg{Event: radio.ErrorEvent{Err: player.ErrCannotEmbed, Channel: "bbb", Exhausted: true}})
	assert.True(t, strings.HasSuffix(m.ErrorMsg, "(giving up)"))

	// Going live clears the error.
	m, _ = update(t, m, RadioStateMsg{
		Event:    radio.StateChange{Current: player.Playing},
		Snapshot: Snapshot{State: player.Playing, Channel: "bbb"},
	})
	assert.Empty(t, m.ErrorMsg)
}

func TestUpdate_ClosedQuits(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := update(t, m, RadioClosedMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_Tick(t *testing.T) {
	m, _, _ := newTestModel(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	m, cmd := update(t, m, TickMsg(at))
	assert.Equal(t, at, m.Now)
	assert.NotNil(t, cmd)
}

func TestView_ShowsChannelsAndTitles(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Width = 60

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Radio Free")
	assert.Contains(t, out, "paused")
	assert.Contains(t, out, "aaa")
	assert.Contains(t, out, "jazz radio", "remembered title replaces the id")
	assert.Contains(t, out, "vol 50%")
}

func TestView_Live(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Snapshot.State = player.Playing
	m.Snapshot.Title = "lofi hip hop radio"
	m.Snapshot.User = "Lofi Girl"
	m.LiveSince = time.Now().Add(-3 * time.Minute)
	m.Now = time.Now()

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "LIVE")
	assert.Contains(t, out, "lofi hip hop radio")
	assert.Contains(t, out, "by Lofi Girl")
	assert.Contains(t, out, "3 minutes ago")
}

func TestView_NarrowTerminalTruncates(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Width = 20
	m.Snapshot.Title = strings.Repeat("very long title ", 10)

	for _, line := range strings.Split(ansi.Strip(m.View()), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20, "line %q", line)
	}
}

func TestScrollStart(t *testing.T) {
	tests := []struct {
		cursor, visible, total, want int
	}{
		{0, 5, 3, 0},
		{0, 5, 34, 0},
		{10, 5, 34, 8},
		{33, 5, 34, 29},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scrollStart(tt.cursor, tt.visible, tt.total), "%+v", tt)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("abc", 0))
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
}
