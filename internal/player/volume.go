package player

// SetVolume sets the volume level (0 to 100).
// Without a handle the level is stored and applied once it is ready.
func (p *Player) SetVolume(level int) {
	p.volume = max(0, min(level, 100))
	if p.handle != nil {
		p.handle.SetVolume(p.volume)
	}
}

// AdjustVolume changes the volume by delta and returns the new level.
func (p *Player) AdjustVolume(delta int) int {
	p.SetVolume(p.volume + delta)
	return p.volume
}

// Volume returns the current volume level.
func (p *Player) Volume() int {
	return p.volume
}
