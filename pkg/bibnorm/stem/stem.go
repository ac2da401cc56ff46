// Package stem wraps the snowball stemmer behind a closed set of language
// identifiers validated at construction time.
package stem

import (
	"fmt"

	"github.com/kljensen/snowball"

	"github.com/cognicore/bibnorm/pkg/bibnorm/internalerr"
)

// Language identifies a stemming algorithm.
type Language string

// The supported algorithms.
const (
	English   Language = "english"
	Spanish   Language = "spanish"
	French    Language = "french"
	Russian   Language = "russian"
	Swedish   Language = "swedish"
	Norwegian Language = "norwegian"
	Hungarian Language = "hungarian"
)

var supported = map[Language]struct{}{
	English:   {},
	Spanish:   {},
	French:    {},
	Russian:   {},
	Swedish:   {},
	Norwegian: {},
	Hungarian: {},
}

// Languages returns the supported language identifiers.
func Languages() []Language {
	return []Language{English, Spanish, French, Russian, Swedish, Norwegian, Hungarian}
}

// Stemmer reduces tokens to their stem form in one language.
type Stemmer struct {
	lang string
}

// New creates a stemmer for the given language. An identifier outside the
// supported set is a caller error and is rejected immediately, never
// silently substituted.
func New(lang Language) (*Stemmer, error) {
	if _, ok := supported[lang]; !ok {
		return nil, fmt.Errorf("%w: %q", internalerr.ErrUnsupportedLanguage, lang)
	}
	return &Stemmer{lang: string(lang)}, nil
}

// Language returns the stemmer's language identifier.
func (s *Stemmer) Language() Language {
	return Language(s.lang)
}

// Stem returns the stem form of word. A word the algorithm cannot process
// is returned unchanged rather than failing the sequence it belongs to.
func (s *Stemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.lang, false)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}
