// internal/game/errors.go
//
// Guess-validation failures, returned as data and shown to the player.
// The session stays ongoing; nothing here aborts a game.

package game

import (
	"errors"
	"fmt"

	"github.com/aperrin/motus/internal/words"
)

// ValidationKind distinguishes the recoverable ways a guess can be rejected.
type ValidationKind uint8

const (
	// InvalidCharacters: the normalized guess contains a non-alphabetic rune.
	InvalidCharacters ValidationKind = iota + 1
	// WrongLength: the normalized guess is not exactly WordLength letters.
	WrongLength
	// UnknownWord: the guess is not in the active language's dictionary.
	UnknownWord
)

// ValidationError reports a rejected guess. Input holds the normalized guess
// that was validated; Lang is set for UnknownWord.
type ValidationError struct {
	Kind  ValidationKind
	Input string
	Lang  words.Lang
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case InvalidCharacters:
		return fmt.Sprintf("guess %q contains non-alphabetic characters", e.Input)
	case WrongLength:
		return fmt.Sprintf("guess %q must be exactly %d letters", e.Input, words.WordLength)
	case UnknownWord:
		return fmt.Sprintf("%q is not in the %s dictionary", e.Input, e.Lang)
	}
	return fmt.Sprintf("invalid guess %q", e.Input)
}

// ErrIllegalTransition is returned when a transition is not valid in the
// session's current phase. The session is left untouched.
var ErrIllegalTransition = errors.New("game: transition not valid in current phase")
