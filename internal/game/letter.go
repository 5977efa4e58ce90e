// internal/game/letter.go
//
// Core type definitions for the guessing engine.
// Defines:
//   - Classification: per-letter result of a scored guess.
//   - Letter: one classified character.
//   - Attempt: one classified guess (five Letters).

package game

import "github.com/samber/lo"

// Classification is the evaluation result for a single letter of a guess.
type Classification uint8

const (
	// Unused: the letter does not occur in the target.
	Unused Classification = iota
	// Correct: right letter, right position.
	Correct
	// Misplaced: the letter occurs in the target, at a different position.
	Misplaced
	// Handled: a duplicate occurrence already accounted for by an earlier
	// Correct or Misplaced of the same character. Displayed like Unused;
	// exists only so duplicates are never double-counted.
	Handled
)

// String returns the lowercase name of the classification.
func (c Classification) String() string {
	switch c {
	case Unused:
		return "unused"
	case Correct:
		return "correct"
	case Misplaced:
		return "misplaced"
	case Handled:
		return "handled"
	}
	return "unknown"
}

// Letter is one classified character of an attempt.
// Char is always a single lowercase ASCII letter (normalization has run).
type Letter struct {
	Char  rune
	Class Classification
}

// Attempt is one classified guess, one Letter per position of the guess.
// Immutable once returned by Score.
type Attempt []Letter

// AllCorrect reports whether the attempt solves the game.
func (a Attempt) AllCorrect() bool {
	return lo.EveryBy(a, func(l Letter) bool { return l.Class == Correct })
}

// Word returns the normalized guess the attempt was scored from.
func (a Attempt) Word() string {
	rs := make([]rune, len(a))
	for i, l := range a {
		rs[i] = l.Char
	}
	return string(rs)
}
