package notify

// stubNotifier is used when D-Bus is unavailable.
type stubNotifier struct{}

// NewStub returns a notifier that does nothing.
func NewStub() Notifier {
	return stubNotifier{}
}

func (stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (stubNotifier) Close(_ uint32) error {
	return nil
}

func (stubNotifier) Events() <-chan Event {
	return nil
}
