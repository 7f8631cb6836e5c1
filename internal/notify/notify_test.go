package notify

import "testing"

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestStubNotifier(t *testing.T) {
	n := NewStub()

	id, err := n.Notify(Notification{Title: "Live now"})
	if err != nil || id != 0 {
		t.Errorf("Notify() = (%d, %v), want (0, nil)", id, err)
	}
	if err := n.Close(1); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if n.Events() != nil {
		t.Error("Events() should be nil for the stub")
	}
}
