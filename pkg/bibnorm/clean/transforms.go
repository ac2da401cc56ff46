package clean

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/bibnorm/pkg/bibnorm/token"
)

// Per-token transforms. Every transform checks whether it would change the
// token before building a replacement, so a token already in canonical form
// passes through without allocating (it stays a view).

// DecodeEntities replaces an HTML-encoded entity token ("&amp;") with its
// decoded form. Tokens that do not look like an entity, or that fail to
// decode, are left unchanged.
func DecodeEntities(t *token.Token) {
	s := t.String()
	if !strings.HasPrefix(s, "&") || !strings.HasSuffix(s, ";") {
		return
	}
	if decoded := html.UnescapeString(s); decoded != s {
		t.Replace(decoded)
	}
}

// Lowercase folds the token to lowercase. The token is only rewritten when
// at least one rune actually changes under case folding.
func Lowercase(t *token.Token) {
	s := t.String()
	for _, r := range s {
		if unicode.ToLower(r) != r {
			t.Replace(strings.ToLower(s))
			return
		}
	}
}

// foldPool hands out transliteration chains. A transform.Chain carries
// internal state, so concurrent pipelines must not share one.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// Transliterate replaces accented characters with their base ASCII letter
// ("é" → "e"). Characters with no decomposition survive unchanged and are
// left for StripNonASCII. Pure-ASCII tokens are not touched.
func Transliterate(t *token.Token) {
	s := t.String()
	if isASCII(s) {
		return
	}
	tr := foldPool.Get().(transform.Transformer)
	folded, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil || folded == s {
		return
	}
	t.Replace(folded)
}

// StripNonASCII removes every remaining rune outside the ASCII range. This
// is the defensive pass after Transliterate, which cannot map every
// character to ASCII.
func StripNonASCII(t *token.Token) {
	s := t.String()
	if isASCII(s) {
		return
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	t.Replace(b.String())
}

// StripDigitsPunct removes ASCII digits and ASCII punctuation from the
// token. A hyphen strictly between two other characters is kept, so
// compound words like "well-known" survive while a leading or trailing
// hyphen is stripped. Boundary hyphens are trimmed after the strip, so a
// hyphen exposed by a removed neighbor does not linger into a second pass.
func StripDigitsPunct(t *token.Token) {
	s := t.String()
	if !needsPunctStrip(s) {
		return
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '-' || (!isASCIIDigit(r) && !isASCIIPunct(r)) {
			b.WriteRune(r)
		}
	}
	t.Replace(strings.Trim(b.String(), "-"))
}

// needsPunctStrip reports whether the token contains a removable rune: an
// ASCII digit, ASCII punctuation other than a hyphen, or a hyphen at the
// token boundary.
func needsPunctStrip(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return true
	}
	for _, r := range s {
		if isASCIIDigit(r) || (isASCIIPunct(r) && r != '-') {
			return true
		}
	}
	return false
}

// TrimSpace removes leading and trailing ASCII whitespace, touching the
// token only when boundary whitespace is actually present.
func TrimSpace(t *token.Token) {
	s := t.String()
	if s == "" {
		return
	}
	if !isASCIISpace(rune(s[0])) && !isASCIISpace(rune(s[len(s)-1])) {
		return
	}
	t.Replace(strings.Trim(s, asciiSpace))
}

const asciiSpace = " \t\n\f\r"

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isASCIIPunct matches the ASCII punctuation block, which includes symbol
// characters such as '$' and '~' that unicode.IsPunct does not cover.
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

func isASCIISpace(r rune) bool {
	return strings.ContainsRune(asciiSpace, r)
}
