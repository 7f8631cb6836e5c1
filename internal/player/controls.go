package player

// SetVideoID switches to another video. Setting the current id is a no-op.
// It can be called before any handle exists.
func (p *Player) SetVideoID(id string) {
	if id == p.videoID {
		return
	}
	p.videoID = id

	if p.handle != nil {
		p.handle.LoadVideoByID(id)
		return
	}
	p.tryCreate()
}

// Play requests playback. The state moves to Loading until the native
// player confirms.
func (p *Player) Play() {
	p.setState(Loading)
	p.autoPlay = true
	if p.handle != nil {
		p.seekToLiveEdge()
	}
}

// Pause stops playback. The native player is fully stopped so that the
// next Play resumes at the live edge rather than a stale buffer.
func (p *Player) Pause() {
	p.autoPlay = false
	if p.handle != nil {
		p.handle.StopVideo()
	}
	p.setState(Paused)
}

// Toggle pauses unless the player is already paused. Intent follows the
// observed state, so toggling while Loading pauses.
func (p *Player) Toggle() {
	if p.state == Paused {
		p.Play()
		return
	}
	p.Pause()
}

// NotifyHostReady signals that the host can embed a native player.
func (p *Player) NotifyHostReady() {
	if p.loaded {
		return
	}
	p.loaded = true
	p.tryCreate()
}
