// Package stderr captures output that libmpv, ffmpeg and the ytdl hook
// write to file descriptor 2, so it lands in the log instead of on top of
// the TUI.
package stderr

import "strings"

// Line is one captured stderr line. mpv prefixes its terminal messages
// with the emitting module, e.g. "[ytdl_hook] ERROR: ...".
type Line struct {
	Source string
	Text   string
	Error  bool
}

func parseLine(raw string) (Line, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Line{}, false
	}

	l := Line{Text: raw}
	if strings.HasPrefix(raw, "[") {
		if end := strings.IndexByte(raw, ']'); end > 1 {
			l.Source = raw[1:end]
			l.Text = strings.TrimSpace(raw[end+1:])
		}
	}
	upper := strings.ToUpper(l.Text)
	l.Error = strings.HasPrefix(upper, "ERROR") || strings.Contains(upper, "FAILED")
	return l, true
}
