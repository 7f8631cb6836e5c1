package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "radio", "channels"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Radio
	{ActionToggle, []string{" "}, "Play/pause", "radio"},
	{ActionNextChannel, []string{"n", "pgdown"}, "Next channel", "radio"},
	{ActionPrevChannel, []string{"p", "pgup"}, "Previous channel", "radio"},
	{ActionOpenLivestream, []string{"o"}, "Open livestream in browser", "radio"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "radio"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "radio"},

	// Channel list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "channels"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "channels"},
	{ActionSelect, []string{"enter"}, "Tune to channel", "channels"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
