// internal/game/session.go
//
// Session state machine for a single game.
// Phases: Idle → Ongoing → Won | Lost, plus an absorbing Errored phase for
// dictionary or random-draw failures. Transitions that are not valid in the
// current phase return ErrIllegalTransition and change nothing.
//
// The session is single-threaded by design: it is owned exclusively by its
// caller and never locks.

package game

import (
	"errors"

	"github.com/aperrin/motus/internal/words"
)

// MaxAttempts is the number of guesses before the game is lost.
const MaxAttempts = 6

// Phase is the session's lifecycle state.
type Phase uint8

const (
	// Idle: no target drawn yet.
	Idle Phase = iota
	// Ongoing: a target is set and the attempt budget is not exhausted.
	Ongoing
	// Won: an attempt came back all-Correct.
	Won
	// Lost: MaxAttempts attempts submitted without winning.
	Lost
	// Errored: a collaborator failed (dictionary load, empty dictionary,
	// random draw). Unrecoverable within the game; only StartNewGame or
	// SwitchLanguage leave it.
	Errored
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// Session holds one game: the target, the ordered attempt history (oldest
// first), the pending raw input, and the last validation error. Collaborators
// (dictionary provider, random index source) are injected at construction.
type Session struct {
	dicts words.Provider
	draw  words.IndexSource

	phase    Phase
	lang     words.Lang
	dict     *words.Dictionary
	target   string
	attempts []Attempt
	pending  string
	lastErr  *ValidationError
	fault    error
}

// NewSession builds an Idle session for lang. Call StartNewGame to play.
func NewSession(dicts words.Provider, draw words.IndexSource, lang words.Lang) *Session {
	return &Session{dicts: dicts, draw: draw, lang: lang, phase: Idle}
}

// StartNewGame draws a fresh target from the active language's dictionary and
// resets the history. Valid in every phase. A dictionary or draw failure
// moves the session to Errored and returns the underlying error.
func (s *Session) StartNewGame() error {
	dict, err := s.dicts.Dictionary(s.lang)
	if err != nil {
		return s.fail(err)
	}
	target, err := dict.Pick(s.draw)
	if err != nil {
		return s.fail(err)
	}
	s.phase = Ongoing
	s.dict = dict
	s.target = target
	s.attempts = nil
	s.pending = ""
	s.lastErr = nil
	s.fault = nil
	return nil
}

// SwitchLanguage resets the session on the dictionary for lang.
func (s *Session) SwitchLanguage(lang words.Lang) error {
	s.lang = lang
	return s.StartNewGame()
}

// EditInput replaces the pending guess. Ongoing only.
func (s *Session) EditInput(text string) error {
	if s.phase != Ongoing {
		return ErrIllegalTransition
	}
	s.pending = text
	return nil
}

// SubmitAttempt scores the pending input. Ongoing only.
//
// On validation failure the session stays Ongoing with lastErr set and the
// pending input kept for editing. On success the attempt is appended, pending
// input and lastErr are cleared, and the outcome is re-derived: all-Correct →
// Won; MaxAttempts reached → Lost (the final attempt is still scored and
// retained); otherwise Ongoing.
func (s *Session) SubmitAttempt() (Attempt, error) {
	if s.phase != Ongoing {
		return nil, ErrIllegalTransition
	}
	att, err := Score(s.dict, s.target, s.pending)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.lastErr = verr
			return nil, verr
		}
		return nil, s.fail(err)
	}
	s.attempts = append(s.attempts, att)
	s.pending = ""
	s.lastErr = nil
	switch {
	case att.AllCorrect():
		s.phase = Won
	case len(s.attempts) >= MaxAttempts:
		s.phase = Lost
	}
	return att, nil
}

// fail moves the session to the absorbing Errored phase.
func (s *Session) fail(err error) error {
	s.phase = Errored
	s.fault = err
	return err
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Lang returns the active language tag.
func (s *Session) Lang() words.Lang { return s.lang }

// Target returns the secret word (normalized). Empty while Idle/Errored.
func (s *Session) Target() string { return s.target }

// Attempts returns the scored history, oldest first. The slice is a copy;
// the attempts themselves are immutable.
func (s *Session) Attempts() []Attempt {
	out := make([]Attempt, len(s.attempts))
	copy(out, s.attempts)
	return out
}

// AttemptsLeft returns the remaining guess budget.
func (s *Session) AttemptsLeft() int { return MaxAttempts - len(s.attempts) }

// Pending returns the current raw user input.
func (s *Session) Pending() string { return s.pending }

// LastError returns the most recent validation failure, or nil.
func (s *Session) LastError() *ValidationError { return s.lastErr }

// Err returns the collaborator failure that put the session in Errored.
func (s *Session) Err() error { return s.fault }
