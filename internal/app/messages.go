package app

import (
	"time"

	"github.com/llehouerou/radiofree/internal/radio"
)

// TickMsg refreshes relative times.
type TickMsg time.Time

// RadioStateMsg carries a state change and the snapshot taken after it.
type RadioStateMsg struct {
	Event    radio.StateChange
	Snapshot Snapshot
}

// RadioChannelMsg carries a channel change and the snapshot taken after it.
type RadioChannelMsg struct {
	Event    radio.ChannelChange
	Snapshot Snapshot
}

// RadioErrorMsg carries a player error reported by the radio.
type RadioErrorMsg struct {
	Event radio.ErrorEvent
}

// SnapshotMsg carries a snapshot taken after a user command.
type SnapshotMsg struct {
	Snapshot Snapshot
}

// RadioClosedMsg is sent when the radio subscription ends.
type RadioClosedMsg struct{}
