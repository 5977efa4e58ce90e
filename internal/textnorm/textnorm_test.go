package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"motus", "motus"},
		{"  Tarte \n", "tarte"},
		{"élève", "eleve"},
		{"ÉPÉES", "epees"},
		{"cœur", "coeur"},
		{"ŒUFS", "oeufs"},
		{"garçon", "garcon"},
		{"naïve", "naive"},
		{"agò", "ago"}, // combining grave accent
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "input %q", c.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"élève", "cœur", "  PLAIN  ", "deja", "français"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeKeepsNonAlpha(t *testing.T) {
	// Normalization does not validate; rejection of digits/punctuation is the
	// scorer's job.
	assert.Equal(t, "ab1de", Normalize("Ab1De"))
	assert.Equal(t, "on o", Normalize(" on o "))
}
