package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetRadio() (*RadioState, error)
	SaveRadio(s RadioState)
	SaveTitle(t ChannelTitle) error
	Titles() (map[string]ChannelTitle, error)
	PruneTitles(keep []string) (int, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
