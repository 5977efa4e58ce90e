// internal/game/scorer.go
//
// Attempt scoring: validate a raw guess against the active dictionary, then
// classify each letter against the target word.
//
// Validation order (first failing check wins):
//   1. Normalize target and guess (lowercase, trim, strip accents, œ→oe).
//   2. Non-alphabetic character → InvalidCharacters.
//   3. Length ≠ 5 → WrongLength.
//   4. Not in the dictionary → UnknownWord.
//
// Classification runs in three passes over the guess:
//   1. Positional compare: Correct / Misplaced (present anywhere) / Unused.
//   2. Correct-duplicate resolution: a Misplaced letter whose character is
//      already fully consumed by Correct placements becomes Handled. Uses the
//      final Correct counts from pass 1, never interleaved with pass 3.
//   3. Misplaced-duplicate resolution: left-to-right fold; once the running
//      Misplaced count of a character reaches its count in the target, later
//      occurrences become Handled. The leftmost occurrences keep the signal.
//
// Passes only ever downgrade Misplaced→Handled; a Handled letter is never
// resurrected.

package game

import (
	"github.com/aperrin/motus/internal/textnorm"
	"github.com/aperrin/motus/internal/words"
)

// Score validates guess and classifies it against target. On validation
// failure it returns a *ValidationError; otherwise the returned Attempt has
// exactly one Letter per guess position, in order.
func Score(dict *words.Dictionary, target, guess string) (Attempt, error) {
	t := textnorm.Normalize(target)
	g := textnorm.Normalize(guess)

	if !alphabetic(g) {
		return nil, &ValidationError{Kind: InvalidCharacters, Input: g}
	}
	if len([]rune(g)) != words.WordLength {
		return nil, &ValidationError{Kind: WrongLength, Input: g}
	}
	if !dict.Contains(g) {
		return nil, &ValidationError{Kind: UnknownWord, Input: g, Lang: dict.Lang()}
	}
	return classify(t, g), nil
}

// classify runs the three scoring passes. Both words are normalized and g has
// passed validation; t is the same length by the dictionary invariant.
func classify(target, guess string) Attempt {
	t := []rune(target)
	g := []rune(guess)
	att := make(Attempt, len(g))

	counts := make(map[rune]int, len(t))
	for _, r := range t {
		counts[r]++
	}

	// Pass 1: positional compare.
	for i, r := range g {
		switch {
		case r == t[i]:
			att[i] = Letter{Char: r, Class: Correct}
		case counts[r] > 0:
			att[i] = Letter{Char: r, Class: Misplaced}
		default:
			att[i] = Letter{Char: r, Class: Unused}
		}
	}

	// Pass 2: correct-duplicate resolution.
	correct := make(map[rune]int, len(att))
	for _, l := range att {
		if l.Class == Correct {
			correct[l.Char]++
		}
	}
	for i, l := range att {
		if l.Class == Misplaced && correct[l.Char] >= counts[l.Char] {
			att[i].Class = Handled
		}
	}

	// Pass 3: misplaced-duplicate resolution, left to right.
	seen := make(map[rune]int, len(att))
	for i, l := range att {
		if l.Class != Misplaced {
			continue
		}
		if seen[l.Char] >= counts[l.Char] {
			att[i].Class = Handled
		} else {
			seen[l.Char]++
		}
	}
	return att
}

// alphabetic reports whether s is all lowercase ASCII letters.
// Runs after normalization, so accented input has already been folded.
func alphabetic(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
