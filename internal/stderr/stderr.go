//go:build !windows

package stderr

import (
	"bufio"
	"os"
	"sync"
	"syscall"
)

const bufferSize = 100

// Capture redirects a file descriptor into a pipe and delivers its lines.
type Capture struct {
	fd    int
	orig  int
	r, w  *os.File
	lines chan Line
	once  sync.Once
}

// Start captures fd 2. It must run before libmpv is initialized. On error
// the process keeps writing to the real stderr.
func Start() (*Capture, error) {
	return capture(int(os.Stderr.Fd()))
}

func capture(fd int) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{fd: fd, orig: orig, r: r, w: w, lines: make(chan Line, bufferSize)}
	go c.read()
	return c, nil
}

// read drops lines while the buffer is full so writers in C never block.
func (c *Capture) read() {
	defer close(c.lines)
	defer c.r.Close()
	scanner := bufio.NewScanner(c.r)
	for scanner.Scan() {
		l, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		select {
		case c.lines <- l:
		default:
		}
	}
}

// Lines delivers captured lines. It is closed after Close.
func (c *Capture) Lines() <-chan Line { return c.lines }

// WriteOriginal writes to the real stderr, bypassing capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Close restores the original descriptor.
func (c *Capture) Close() error {
	var err error
	c.once.Do(func() {
		err = syscall.Dup2(c.orig, c.fd)
		_ = syscall.Close(c.orig)
		// Closing our write end and the dup'ed fd lets the reader see EOF.
		c.w.Close()
	})
	return err
}
