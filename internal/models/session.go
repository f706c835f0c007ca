package models

import (
	"github.com/lkarjala/vaelor/internal/ritual"
	"time"
)

// Session is the state of one play session. It is an explicit value passed between the
// presentation layer and the resolution engine, never process-global state. The session
// manager persists it between requests and discards it when the session ends; nothing
// outlives a single playthrough.
type Session struct {
	// Selection holds the evidence crystallised so far.
	Selection ritual.Selection
	// Culprit is drawn at session start and never shown to the player.
	Culprit ritual.Suspect
	// Accused is nil until the player names a suspect. The accusation is made exactly once.
	Accused *ritual.Suspect
	// Deadline is when the king's memory has fully faded. Crystallising past it is refused.
	Deadline time.Time
	// Recorded marks that the playthrough's verdict has been written to the verdict log,
	// so a refreshed epilogue page cannot count twice.
	Recorded bool
}

// MemoryHalfLife is how long the king's memories stay open for crystallising evidence.
const MemoryHalfLife = 2 * time.Minute

// NewSession starts a fresh session with the given culprit and the memory deadline running
// from now.
func NewSession(culprit ritual.Suspect, now time.Time) Session {
	return Session{
		Selection: ritual.Selection{},
		Culprit:   culprit,
		Accused:   nil,
		Deadline:  now.Add(MemoryHalfLife),
	}
}

// Faded reports whether the king's memory has degraded past the crystallising deadline.
func (s Session) Faded(now time.Time) bool {
	return now.After(s.Deadline)
}

// Accuse returns a new Session with the accusation recorded. The first accusation wins;
// later ones are ignored so the accusation stays immutable.
func (s Session) Accuse(suspect ritual.Suspect) Session {
	if s.Accused != nil {
		return s
	}
	s.Accused = &suspect
	return s
}

// Resolve judges the session. Reaching the epilogue without an accusation means the ritual
// was never attempted, which collapses it the same way insufficient evidence does.
func (s Session) Resolve() ritual.Outcome {
	if s.Accused == nil {
		return ritual.FailureInsufficientEvidence
	}
	return ritual.Resolve(s.Selection, *s.Accused, s.Culprit)
}
