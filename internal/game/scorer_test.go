package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrin/motus/internal/words"
)

// dict builds a test dictionary containing the given entries.
func dict(t *testing.T, lang words.Lang, entries ...string) *words.Dictionary {
	t.Helper()
	d, err := words.NewDictionary(lang, entries)
	require.NoError(t, err)
	return d
}

// classes renders an attempt as one letter per position:
// C=Correct, M=Misplaced, U=Unused, H=Handled.
func classes(a Attempt) string {
	out := make([]byte, len(a))
	for i, l := range a {
		switch l.Class {
		case Correct:
			out[i] = 'C'
		case Misplaced:
			out[i] = 'M'
		case Unused:
			out[i] = 'U'
		case Handled:
			out[i] = 'H'
		}
	}
	return string(out)
}

func TestScoreClassification(t *testing.T) {
	cases := []struct {
		name   string
		target string
		guess  string
		want   string
	}{
		{"exact match", "crane", "crane", "CCCCC"},
		{"no overlap", "crane", "dotty", "UUUUU"},
		{"full derangement", "crane", "ranec", "MMMMM"},
		{"mixed", "slate", "plant", "UCCUM"},
		// Duplicate in guess, single in target: leftmost misplaced wins,
		// the second occurrence is handled.
		{"misplaced duplicate handled", "flame", "eexyz", "MHUUU"},
		// Correct placements exhaust the target count; the stray duplicate
		// is handled, not misplaced.
		{"correct duplicates exhaust", "abbey", "ebbed", "HCCCU"},
		{"all duplicates vs two in target", "abbey", "bbbbb", "HCCHH"},
		// One of two 'l's placed correctly; remaining misplaced budget is
		// the full target count, leftmost first.
		{"partial correct duplicate", "llama", "lolly", "CUMMU"},
		{"atoll vs allot", "allot", "atoll", "CMMMM"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := dict(t, words.English, c.target, c.guess)
			att, err := Score(d, c.target, c.guess)
			require.NoError(t, err)
			assert.Equal(t, c.want, classes(att))
			assert.Equal(t, c.guess, att.Word())
		})
	}
}

func TestScoreMisplacedNeverExceedsTargetCount(t *testing.T) {
	// Across an attempt, Misplaced count of a character never exceeds its
	// count in the target; excess duplicates come back Handled.
	d := dict(t, words.English, "allot", "atoll", "tolla")
	for _, guess := range []string{"atoll", "tolla"} {
		att, err := Score(d, "allot", guess)
		require.NoError(t, err)
		misplaced := map[rune]int{}
		targetCount := map[rune]int{}
		for _, r := range "allot" {
			targetCount[r]++
		}
		for _, l := range att {
			if l.Class == Misplaced {
				misplaced[l.Char]++
			}
		}
		for r, n := range misplaced {
			assert.LessOrEqual(t, n, targetCount[r], "letter %q in guess %q", r, guess)
		}
	}
}

func TestScoreShapePreserved(t *testing.T) {
	d := dict(t, words.English, "spoon", "snoop")
	att, err := Score(d, "spoon", "snoop")
	require.NoError(t, err)
	require.Len(t, att, words.WordLength)
	for i, r := range "snoop" {
		assert.Equal(t, r, att[i].Char, "position %d", i)
	}
}

func TestScoreNormalizesBothSides(t *testing.T) {
	d := dict(t, words.French, "eleve", "coeur")

	att, err := Score(d, "élève", "ÉLÈVE")
	require.NoError(t, err)
	assert.True(t, att.AllCorrect())

	// The œ ligature folds to "oe" before comparison.
	att, err = Score(d, "coeur", "cœur")
	require.NoError(t, err)
	assert.True(t, att.AllCorrect())
	assert.Equal(t, "coeur", att.Word())
}

func TestScoreValidationOrder(t *testing.T) {
	d := dict(t, words.English, "spoon", "apple")

	// Non-alphabetic input is rejected first, echoing the offending input.
	_, err := Score(d, "spoon", "ono p")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidCharacters, verr.Kind)
	assert.Contains(t, verr.Error(), "ono p")

	// Length check runs before dictionary membership.
	_, err = Score(d, "spoon", "ab")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, WrongLength, verr.Kind)

	// Alphabetic, right length, but not a word: the message names the language.
	_, err = Score(d, "apple", "zzzzz")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, UnknownWord, verr.Kind)
	assert.Contains(t, verr.Error(), string(words.English))
}

func TestScoreTrimsBeforeValidating(t *testing.T) {
	d := dict(t, words.English, "crane")
	att, err := Score(d, "crane", "  CRANE \n")
	require.NoError(t, err)
	assert.True(t, att.AllCorrect())
}
