package player

// tryCreate constructs the native player once a video id is known and the
// host is ready. Once a handle exists it is never constructed again.
func (p *Player) tryCreate() {
	if p.videoID == "" || !p.loaded || p.handle != nil || p.creating {
		return
	}

	p.creating = true
	err := p.backend.Create(p.container, p.videoID, p.options, Callbacks{
		OnReady:       p.onReady,
		OnStateChange: p.onStateChange,
		OnError:       p.onError,
	})
	if err != nil {
		p.creating = false
		p.logger.Warn().Err(err).Str("video_id", p.videoID).Msg("create player")
		p.emitError(ErrInternal)
	}
}

func (p *Player) onReady(h Handle) {
	if p.handle != nil {
		return
	}
	p.creating = false
	p.handle = h
	p.handle.SetVolume(p.volume)

	// The id may have changed while construction was in flight.
	if data := h.VideoData(); data.VideoID != "" && data.VideoID != p.videoID {
		p.handle.LoadVideoByID(p.videoID)
	}

	if p.autoPlay {
		p.handle.PlayVideo()
	}
	p.logger.Debug().Str("video_id", p.videoID).Bool("autoplay", p.autoPlay).Msg("player ready")
}

func (p *Player) onStateChange() {
	if p.handle == nil {
		return
	}
	native := p.handle.PlayerState()
	p.logger.Debug().Stringer("native", native).Msg("state change")
	p.setState(native.PlayState())
}

func (p *Player) onError(code int) {
	e := ErrorFromCode(code)
	p.logger.Warn().Int("code", code).Stringer("error", e).Str("video_id", p.videoID).Msg("player error")
	p.emitError(e)
}
