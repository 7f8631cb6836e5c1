//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"

	appName      = "Radio Free"
	desktopEntry = "radiofree"
	eventBuffer  = 16
)

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	conn   *dbus.Conn
	obj    dbus.BusObject
	events chan Event
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Returns a no-op notifier if D-Bus is unavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		// D-Bus not available, return no-op notifier (intentional graceful degradation)
		return NewStub(), nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}

	n := &dbusNotifier{
		conn:   conn,
		obj:    conn.Object(dbusNotifyDest, dbusNotifyPath),
		events: make(chan Event, eventBuffer),
	}
	if err := n.listen(); err != nil {
		return nil, err
	}
	return n, nil
}

// listen subscribes to ActionInvoked and NotificationClosed signals.
func (n *dbusNotifier) listen() error {
	for _, member := range []string{"ActionInvoked", "NotificationClosed"} {
		if err := n.conn.AddMatchSignal(
			dbus.WithMatchObjectPath(dbusNotifyPath),
			dbus.WithMatchInterface(dbusNotifyInterface),
			dbus.WithMatchMember(member),
		); err != nil {
			return err
		}
	}

	signals := make(chan *dbus.Signal, eventBuffer)
	n.conn.Signal(signals)
	go func() {
		for sig := range signals {
			if ev, ok := parseSignal(sig); ok {
				select {
				case n.events <- ev:
				default:
					// Drop if nobody is listening
				}
			}
		}
	}()
	return nil
}

// parseSignal converts a notification signal into an Event.
func parseSignal(sig *dbus.Signal) (Event, bool) {
	if sig == nil || len(sig.Body) < 2 {
		return Event{}, false
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return Event{}, false
	}
	switch sig.Name {
	case dbusNotifyInterface + ".ActionInvoked":
		key, ok := sig.Body[1].(string)
		if !ok {
			return Event{}, false
		}
		return Event{ID: id, Action: key}, true
	case dbusNotifyInterface + ".NotificationClosed":
		return Event{ID: id, Closed: true}, true
	}
	return Event{}, false
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}

	actions := make([]string, 0, 2*len(notif.Actions))
	for _, a := range notif.Actions {
		actions = append(actions, a.Key, a.Label)
	}

	// D-Bus Notify method signature:
	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		appName,
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		notif.Body,
		actions,
		hints,
		notif.Timeout,
	)

	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Close closes a notification by ID.
func (n *dbusNotifier) Close(id uint32) error {
	call := n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id)
	return call.Err
}

// Events implements Notifier.
func (n *dbusNotifier) Events() <-chan Event {
	return n.events
}
