package mpv

import (
	"errors"
	"sync"
)

// fakeEvent is an event queued on a fakeClient.
type fakeEvent struct {
	ev     event
	reason endReason
}

// fakeClient records commands and serves canned properties.
type fakeClient struct {
	mu        sync.Mutex
	commands  [][]string
	flags     map[string]bool
	doubles   map[string]float64
	strs      map[string]string
	observed  []string
	failOn    string
	events    chan fakeEvent
	destroyed bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		flags:   map[string]bool{},
		doubles: map[string]float64{},
		strs:    map[string]string{},
		events:  make(chan fakeEvent, 16),
	}
}

func (f *fakeClient) command(args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, args)
	if f.failOn != "" && args[0] == f.failOn {
		return errors.New("command failed")
	}
	if args[0] == "quit" {
		f.events <- fakeEvent{ev: evShutdown}
	}
	return nil
}

func (f *fakeClient) flag(name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flags[name], nil
}

func (f *fakeClient) double(name string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.doubles[name]
	if !ok {
		return 0, errors.New("property unavailable")
	}
	return v, nil
}

func (f *fakeClient) str(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.strs[name]
	if !ok {
		return "", errors.New("property unavailable")
	}
	return v, nil
}

func (f *fakeClient) observe(name string) error {
	f.observed = append(f.observed, name)
	return nil
}

func (f *fakeClient) wait() (event, endReason) {
	e := <-f.events
	return e.ev, e.reason
}

func (f *fakeClient) destroy() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = true
}

func (f *fakeClient) last() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.commands) == 0 {
		return nil
	}
	return f.commands[len(f.commands)-1]
}

func (f *fakeClient) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = nil
}

func (f *fakeClient) all() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.commands...)
}
