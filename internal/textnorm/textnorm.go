// internal/textnorm/textnorm.go
//
// Locale-aware string normalization used everywhere words are compared.
// Target words, guesses, and dictionary entries all pass through Normalize
// so that comparison is byte-for-byte on plain lowercase ASCII letters.
//
// Rules, in order:
//   1. Trim surrounding whitespace.
//   2. Lowercase (this also maps "Œ" to "œ").
//   3. Strip diacritics: decompose (NFD), drop combining marks, recompose (NFC).
//   4. Substitute the ligature "œ" → "oe" (French words like "cœur" must
//      compare equal to their keyboard spelling "coeur").

package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies the comparison normalization. It is pure and idempotent:
// normalizing an already-normalized string returns it unchanged.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return strings.ReplaceAll(s, "œ", "oe")
}
