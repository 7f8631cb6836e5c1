package stderr

import (
	"context"

	"github.com/rs/zerolog"
)

// Forward logs lines until ctx is done or lines is closed. Error lines are
// logged at warn level, the rest at debug.
func Forward(ctx context.Context, lines <-chan Line, logger zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case l, ok := <-lines:
			if !ok {
				return
			}
			ev := logger.Debug()
			if l.Error {
				ev = logger.Warn()
			}
			if l.Source != "" {
				ev = ev.Str("module", l.Source)
			}
			ev.Str("source", "stderr").Msg(l.Text)
		}
	}
}
