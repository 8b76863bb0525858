// Package anim implements frame-stepped playback of several series that may
// have different frame counts.
//
// A [Player] owns one session. Each [Player.Tick] advances a single
// session-wide frame counter; every track reveals points up to its own
// clamped frame, so a short series freezes at its last point while longer
// ones keep going. The session finishes after exactly as many ticks as the
// longest track has frames and never restarts on its own.
//
// Player is not safe for concurrent use; the display loop owns it.
package anim

import (
	"fmt"

	"github.com/san-kum/trajview/internal/trajectory"
)

// State of a playback session.
type State int

const (
	Idle State = iota
	Advancing
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Advancing:
		return "advancing"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Track pairs a series with its clamped cursor.
type Track struct {
	Series trajectory.Series
	Cursor trajectory.Cursor
}

type Player struct {
	tracks    []Track
	ticks     int
	maxFrames int
}

func New(series ...trajectory.Series) *Player {
	p := &Player{tracks: make([]Track, len(series))}
	for i, s := range series {
		n := s.Frames()
		p.tracks[i] = Track{Series: s, Cursor: trajectory.Cursor{Frames: n}}
		if n > p.maxFrames {
			p.maxFrames = n
		}
	}
	return p
}

// State derives the session state from the tick count.
func (p *Player) State() State {
	switch {
	case p.ticks >= p.maxFrames:
		return Finished
	case p.ticks == 0:
		return Idle
	default:
		return Advancing
	}
}

func (p *Player) Finished() bool { return p.State() == Finished }

// Tick advances one frame. It returns false, without side effects, once the
// session has finished.
func (p *Player) Tick() bool {
	if p.Finished() {
		return false
	}
	p.ticks++
	return true
}

// Reset returns the session to Idle.
func (p *Player) Reset() { p.ticks = 0 }

// Ticks is the number of ticks issued so far.
func (p *Player) Ticks() int { return p.ticks }

// MaxFrames is the frame count of the longest track.
func (p *Player) MaxFrames() int { return p.maxFrames }

// Frame is the session frame currently shown, -1 while Idle.
func (p *Player) Frame() int { return p.ticks - 1 }

func (p *Player) Len() int { return len(p.tracks) }

func (p *Player) Track(i int) Track { return p.tracks[i] }

// Index is the clamped data index for track i at the current frame, -1 when
// nothing is shown.
func (p *Player) Index(i int) int {
	return p.tracks[i].Cursor.Clamp(p.Frame())
}

// Visible returns the revealed prefix of track i.
func (p *Player) Visible(i int) (x, y []float64) {
	t := p.tracks[i]
	return t.Series.Prefix(t.Cursor.Visible(p.Frame()))
}

// TrackDone reports whether track i has revealed all of its points.
func (p *Player) TrackDone(i int) bool {
	c := p.tracks[i].Cursor
	if c.Frames == 0 {
		return true
	}
	return p.ticks > 0 && c.Done(p.Frame())
}

// Progress is the fraction of ticks issued, 1 for an empty session.
func (p *Player) Progress() float64 {
	if p.maxFrames == 0 {
		return 1
	}
	return float64(p.ticks) / float64(p.maxFrames)
}
