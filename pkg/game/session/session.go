// Package session tracks the move counter and play timer of the current maze.
package session

import (
	"time"

	"github.com/google/uuid"

	"gridmaze/pkg/game/i18n"
)

// Session counts moves and times a run from the first move to the goal
type Session struct {
	ID uuid.UUID

	moves      int
	started    time.Time
	finishedAt time.Time
	running    bool
	finished   bool

	now func() time.Time
}

// New creates a session using the wall clock
func New() *Session {
	return NewWithClock(time.Now)
}

// NewWithClock creates a session reading time from now
func NewWithClock(now func() time.Time) *Session {
	return &Session{ID: uuid.New(), now: now}
}

// RecordMove counts a successful move and starts the timer on the first one.
// It reports whether this was the first move.
func (s *Session) RecordMove() bool {
	s.moves++
	if s.started.IsZero() {
		s.started = s.now()
		s.running = true
		return true
	}
	return false
}

// Finish stops the timer because the goal was reached. Later calls keep the first finish time.
func (s *Session) Finish() {
	if s.finished {
		return
	}
	s.finished = true
	s.running = false
	s.finishedAt = s.now()
}

// Reset zeroes the counter and timer and starts a new session id
func (s *Session) Reset() {
	s.ID = uuid.New()
	s.moves = 0
	s.started = time.Time{}
	s.finishedAt = time.Time{}
	s.running = false
	s.finished = false
}

// Moves returns the number of moves made
func (s *Session) Moves() int {
	return s.moves
}

// Running reports whether the timer is ticking
func (s *Session) Running() bool {
	return s.running
}

// Finished reports whether the goal has been reached
func (s *Session) Finished() bool {
	return s.finished
}

// Elapsed returns the time since the first move, frozen once the goal is reached
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.started.IsZero():
		return 0
	case s.finished:
		return s.finishedAt.Sub(s.started)
	default:
		return s.now().Sub(s.started)
	}
}

// Caption renders the window caption, e.g. "Maze Game (steps=3, time=1.2s)"
func (s *Session) Caption() string {
	caption := i18n.F("CAPTION", "Maze Game (steps=%d, time=%.1fs)", s.moves, s.Elapsed().Seconds())
	if s.finished {
		caption += "  " + i18n.T("CAPTION_GOAL", "🎉 GOAL!")
	}
	return caption
}
