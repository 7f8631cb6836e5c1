// Package launch opens URLs in the desktop browser.
package launch

import (
	"errors"
	"os/exec"
	"runtime"
)

// ErrEmptyURL is returned when there is nothing to open.
var ErrEmptyURL = errors.New("launch: empty url")

// command returns the opener for goos.
func command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// Browser opens url without waiting for the browser to exit.
func Browser(url string) error {
	if url == "" {
		return ErrEmptyURL
	}
	name, args := command(runtime.GOOS, url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
