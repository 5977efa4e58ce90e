// internal/words/words.go
//
// Per-language dictionaries for the game engine.
//
// Responsibilities:
//   - Load a word list for a language tag from an environment-provided file,
//     or fall back to the embedded defaults (fr.txt, en.txt).
//   - Normalize and filter entries to exactly five ASCII letters.
//   - Support membership testing and random-index selection.
//
// Environment variables:
//   WORDS_FILE_FR=/path/to/french.txt
//   WORDS_FILE_EN=/path/to/english.txt
//
// Lists are one word per line; entries failing validation are silently
// skipped, duplicates collapsed. A language whose list comes out empty is a
// load error, not an empty dictionary.

package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/aperrin/motus/internal/textnorm"
)

// WordLength is the fixed length of every dictionary word.
const WordLength = 5

// Lang tags a dictionary language.
type Lang string

const (
	French  Lang = "fr"
	English Lang = "en"
)

//go:embed fr.txt
var embeddedFrench string

//go:embed en.txt
var embeddedEnglish string

var embedded = map[Lang]string{
	French:  embeddedFrench,
	English: embeddedEnglish,
}

// Dictionary is the closed set of valid words for one language, ordered for
// random-index selection, with a set for O(1) membership tests.
type Dictionary struct {
	lang Lang
	list []string
	set  map[string]struct{}
}

// NewDictionary builds a dictionary from raw entries. Entries are normalized,
// filtered to exactly WordLength ASCII letters, and de-duplicated preserving
// first occurrence. An empty result is an error.
func NewDictionary(lang Lang, entries []string) (*Dictionary, error) {
	list := lo.Uniq(lo.FilterMap(entries, func(w string, _ int) (string, bool) {
		w = textnorm.Normalize(w)
		return w, len(w) == WordLength && isAlpha(w)
	}))
	if len(list) == 0 {
		return nil, fmt.Errorf("words: no valid %d-letter words for language %q", WordLength, lang)
	}
	return &Dictionary{
		lang: lang,
		list: list,
		set:  lo.SliceToMap(list, func(w string) (string, struct{}) { return w, struct{}{} }),
	}, nil
}

// Lang returns the dictionary's language tag.
func (d *Dictionary) Lang() Lang { return d.lang }

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.list) }

// At returns the word at index i.
func (d *Dictionary) At(i int) string { return d.list[i] }

// Contains reports whether w is a member. The input is normalized first, so
// "Élève" and "eleve" are the same word.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[textnorm.Normalize(w)]
	return ok
}

// Pick draws one word using the supplied index source.
func (d *Dictionary) Pick(src IndexSource) (string, error) {
	i, err := src(len(d.list))
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(d.list) {
		return "", fmt.Errorf("words: index %d out of range [0,%d)", i, len(d.list))
	}
	return d.list[i], nil
}

// IndexSource yields a uniformly distributed index in [0, n).
// Injected so tests can substitute a fixed sequence.
type IndexSource func(n int) (int, error)

// FrandIndex is the default IndexSource, backed by a fast CSPRNG.
func FrandIndex(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("words: cannot draw from empty range")
	}
	return frand.Intn(n), nil
}

// Provider resolves language tags to dictionaries.
type Provider interface {
	Dictionary(lang Lang) (*Dictionary, error)
}

// fileProvider loads from env-configured files or embedded defaults, caching
// per language. The game is single-threaded; no locking here.
type fileProvider struct {
	cache map[Lang]*Dictionary
}

// NewProvider constructs the standard file/embedded Provider.
func NewProvider() Provider {
	return &fileProvider{cache: make(map[Lang]*Dictionary)}
}

func (p *fileProvider) Dictionary(lang Lang) (*Dictionary, error) {
	if d, ok := p.cache[lang]; ok {
		return d, nil
	}
	d, err := load(lang)
	if err != nil {
		return nil, err
	}
	p.cache[lang] = d
	return d, nil
}

// load reads the word list for lang: env-configured file first, embedded
// default otherwise.
func load(lang Lang) (*Dictionary, error) {
	var entries []string
	if path := os.Getenv(envVar(lang)); path != "" {
		var err error
		entries, err = readWordFile(path)
		if err != nil {
			return nil, err
		}
	} else {
		src, ok := embedded[lang]
		if !ok {
			return nil, fmt.Errorf("words: no word list for language %q", lang)
		}
		entries = strings.Split(src, "\n")
	}
	d, err := NewDictionary(lang, entries)
	if err != nil {
		return nil, err
	}
	log.Info().Str("lang", string(lang)).Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

// envVar maps a language tag to its override variable, e.g. fr → WORDS_FILE_FR.
func envVar(lang Lang) string {
	return "WORDS_FILE_" + strings.ToUpper(string(lang))
}

// readWordFile loads one word per line; validation happens in NewDictionary.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
