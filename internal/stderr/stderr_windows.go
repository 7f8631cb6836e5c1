//go:build windows

package stderr

import (
	"errors"
	"os"
)

// Capture is unavailable on Windows, where libmpv writes to its own console.
type Capture struct{}

// Start always fails on Windows.
func Start() (*Capture, error) {
	return nil, errors.ErrUnsupported
}

// Lines returns nil.
func (c *Capture) Lines() <-chan Line { return nil }

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Close is a no-op.
func (c *Capture) Close() error { return nil }
