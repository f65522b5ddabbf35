package card

import (
	log "github.com/sirupsen/logrus"
)

// State is the PlaybackState of a card.
type State int

const (
	// Idle shows the thumbnail; the clip is paused and hidden.
	Idle State = iota
	// Previewing shows the muted clip playing over the thumbnail.
	Previewing
)

func (s State) String() string {
	if s == Previewing {
		return "previewing"
	}
	return "idle"
}

// Media is the handle of the element playing the preview clip.
type Media interface {
	SetCurrentTime(seconds float64)
	Play() error
	Pause()
}

// Preview owns the hover state of one card and drives its media handle.
// Effects run once per state change: entering Previewing rewinds and plays,
// returning to Idle pauses where the clip stopped. Events that do not change
// the state do nothing.
//
// A Preview belongs to a single card and is not safe for concurrent use.
type Preview struct {
	state State
	media Media
}

// Attach sets the media handle. It does not replay effects of earlier
// transitions.
func (p *Preview) Attach(m Media) {
	p.media = m
}

func (p *Preview) State() State {
	return p.state
}

func (p *Preview) Playing() bool {
	return p.state == Previewing
}

// PointerEnter handles the pointer entering the card.
func (p *Preview) PointerEnter() {
	p.transition(Previewing)
}

// PointerLeave handles the pointer leaving the card.
func (p *Preview) PointerLeave() {
	p.transition(Idle)
}

func (p *Preview) transition(to State) {
	if p.state == to {
		return
	}
	p.state = to
	if p.media == nil {
		return
	}
	switch to {
	case Previewing:
		p.media.SetCurrentTime(0)
		if err := p.media.Play(); err != nil {
			// Autoplay policies may refuse; the next hover tries again.
			log.WithError(err).Debug("preview playback did not start")
		}
	case Idle:
		p.media.Pause()
	}
}
