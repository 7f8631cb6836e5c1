package radio

import "github.com/llehouerou/radiofree/internal/player"

// StateChange is emitted when the player's observed state changes.
type StateChange struct {
	Previous player.PlayState
	Current  player.PlayState
}

// ChannelChange is emitted when the radio tunes to a channel.
//
// Emitted by NextChannel, PreviousChannel, JumpTo, SetChannel, and by the
// automatic skip after a player error. Index is the channel's position in
// the list, or -1 for a SetChannel id outside it.
type ChannelChange struct {
	Channel string
	Index   int
}

// ErrorEvent is emitted for every player error, before the radio skips.
type ErrorEvent struct {
	Err     player.Error
	Channel string
	Index   int
	// Exhausted is set when the skip limit was reached and the radio
	// paused instead of skipping.
	Exhausted bool
}

// OnState registers a synchronous state listener.
func (r *Radio) OnState(fn func(StateChange)) {
	r.stateListeners = append(r.stateListeners, fn)
}

// OnChannel registers a synchronous channel listener.
func (r *Radio) OnChannel(fn func(ChannelChange)) {
	r.channelListeners = append(r.channelListeners, fn)
}

// OnError registers a synchronous error listener.
func (r *Radio) OnError(fn func(ErrorEvent)) {
	r.errorListeners = append(r.errorListeners, fn)
}

func (r *Radio) emitState(e StateChange) {
	for _, fn := range r.stateListeners {
		fn(e)
	}
	r.eachSub(func(s *Subscription) { s.sendState(e) })
}

func (r *Radio) emitChannel(e ChannelChange) {
	for _, fn := range r.channelListeners {
		fn(e)
	}
	r.eachSub(func(s *Subscription) { s.sendChannel(e) })
}

func (r *Radio) emitError(e ErrorEvent) {
	for _, fn := range r.errorListeners {
		fn(e)
	}
	r.eachSub(func(s *Subscription) { s.sendError(e) })
}

func (r *Radio) eachSub(fn func(*Subscription)) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	for _, s := range r.subs {
		fn(s)
	}
}

// Subscribe creates a new event subscription for consumers running on
// other goroutines.
func (r *Radio) Subscribe() *Subscription {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	sub := newSubscription()
	if r.closed {
		sub.close()
		return sub
	}
	r.subs = append(r.subs, sub)
	return sub
}

// Close closes all subscriptions.
func (r *Radio) Close() error {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	for _, sub := range r.subs {
		sub.close()
	}
	r.subs = nil
	return nil
}
