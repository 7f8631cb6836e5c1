package state

import "maps"

// Mock is a test double for Manager.
type Mock struct {
	radio  *RadioState
	titles map[string]ChannelTitle
	saves  int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{titles: make(map[string]ChannelTitle)}
}

func (m *Mock) GetRadio() (*RadioState, error) {
	if m.radio == nil {
		return nil, nil //nolint:nilnil // mirrors Manager on first run
	}
	s := *m.radio
	return &s, nil
}

func (m *Mock) SaveRadio(s RadioState) {
	m.radio = &s
	m.saves++
}

func (m *Mock) SaveTitle(t ChannelTitle) error {
	m.titles[t.VideoID] = t
	return nil
}

func (m *Mock) Titles() (map[string]ChannelTitle, error) {
	return maps.Clone(m.titles), nil
}

func (m *Mock) PruneTitles(keep []string) (int, error) {
	set := make(map[string]bool, len(keep))
	for _, id := range keep {
		set[id] = true
	}
	removed := 0
	for id := range m.titles {
		if !set[id] {
			delete(m.titles, id)
			removed++
		}
	}
	return removed, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saves returns how many times SaveRadio was called.
func (m *Mock) Saves() int { return m.saves }

// IsClosed reports whether Close was called.
func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
