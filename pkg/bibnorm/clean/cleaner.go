// Package clean implements the token-cleaning pipeline used to normalize
// tokenized bibliographic metadata (titles, author names) into a
// lowercase, ASCII-folded, punctuation-reduced form for record alignment.
//
// One generic Pipeline runs all three variants; a variant descriptor table
// fixes which structural stages run and in what order the per-token
// transforms apply. Construction is zero-copy: tokens stay views into the
// caller's strings until a transform actually has to change them.
package clean

import (
	"strings"

	"github.com/cognicore/bibnorm/pkg/bibnorm/internalerr"
	"github.com/cognicore/bibnorm/pkg/bibnorm/stem"
	"github.com/cognicore/bibnorm/pkg/bibnorm/token"
)

// Variant selects one of the three stage orderings.
type Variant int

const (
	// Text cleans free-form token sequences: length filter, then the
	// per-token transforms.
	Text Variant = iota
	// Title additionally drops the subtitle after the first strong
	// punctuation mark and removes parenthesized and bracketed spans.
	Title
	// Author removes parenthesized and bracketed spans (dates, roles) and
	// strips punctuation before transliteration, so accented letters are
	// never miscategorized. Author keeps single-letter initials: no length
	// filter.
	Author
)

func (v Variant) String() string {
	switch v {
	case Text:
		return "text"
	case Title:
		return "title"
	case Author:
		return "author"
	}
	return "unknown"
}

// variantSpec describes one variant's stage table.
type variantSpec struct {
	truncateSubtitle bool
	stripDelimited   bool
	filterShort      bool
	punctBeforeFold  bool
}

var variants = [...]variantSpec{
	Text:   {filterShort: true},
	Title:  {truncateSubtitle: true, stripDelimited: true, filterShort: true},
	Author: {stripDelimited: true, punctBeforeFold: true},
}

// DefaultMinTokenLength is the inclusive length threshold applied when
// Options leaves MinTokenLength at zero. Tokens of byte length 3 or less
// are dropped, keeping only tokens of length 4 and up.
const DefaultMinTokenLength = 3

// Options configures optional pipeline capabilities. Each toggle is
// independent; a disabled capability's stage is absent from the pipeline
// entirely.
type Options struct {
	// MinTokenLength is the inclusive drop threshold for the Text and
	// Title variants. Zero means DefaultMinTokenLength.
	MinTokenLength int
	// DecodeEntities inserts HTML entity decoding as the first per-token
	// step.
	DecodeEntities bool
	// Stemming enables the Stem method.
	Stemming bool
	// Stopwords, when non-empty, drops the listed tokens after the
	// per-token transforms. Entries are matched case-insensitively against
	// normalized tokens.
	Stopwords []string
}

// Cleaner is the uniform contract implemented by every pipeline variant.
type Cleaner interface {
	Clean() Cleaner
	Stem(lang stem.Language) error
	Tokens() []string
	Sequence() token.Sequence
	SetMinLength(min int)
}

// tokenOp is a single per-token transform.
type tokenOp func(*token.Token)

// Pipeline holds one token sequence and cleans it in place. A Pipeline is
// built once per input, cleaned, read, and discarded; it is not shared.
// Distinct pipelines may run concurrently as long as the backing input
// strings are not mutated underneath them.
type Pipeline struct {
	tokens   token.Sequence
	spec     variantSpec
	ops      []tokenOp
	minLen   int
	stemming bool
	stops    map[string]struct{}
}

var _ Cleaner = (*Pipeline)(nil)

// New constructs a pipeline of the given variant over the caller's tokens.
// Construction is zero-copy.
func New(v Variant, input []string, opts Options) *Pipeline {
	minLen := opts.MinTokenLength
	if minLen == 0 {
		minLen = DefaultMinTokenLength
	}
	spec := variants[v]

	var stops map[string]struct{}
	if len(opts.Stopwords) > 0 {
		stops = make(map[string]struct{}, len(opts.Stopwords))
		for _, w := range opts.Stopwords {
			stops[strings.ToLower(w)] = struct{}{}
		}
	}

	return &Pipeline{
		tokens:   token.NewSequence(input),
		spec:     spec,
		ops:      buildOps(spec, opts.DecodeEntities),
		minLen:   minLen,
		stemming: opts.Stemming,
		stops:    stops,
	}
}

// NewText constructs a Text pipeline with default options.
func NewText(input []string) *Pipeline {
	return New(Text, input, Options{})
}

// NewTitle constructs a Title pipeline with default options.
func NewTitle(input []string) *Pipeline {
	return New(Title, input, Options{})
}

// NewAuthor constructs an Author pipeline with default options.
func NewAuthor(input []string) *Pipeline {
	return New(Author, input, Options{})
}

// buildOps assembles the per-token transform order for a variant. The
// Author variant strips digits and punctuation before transliteration;
// Text and Title transliterate first.
func buildOps(spec variantSpec, decode bool) []tokenOp {
	ops := make([]tokenOp, 0, 6)
	if decode {
		ops = append(ops, DecodeEntities)
	}
	ops = append(ops, Lowercase)
	if spec.punctBeforeFold {
		ops = append(ops, StripDigitsPunct, Transliterate, StripNonASCII)
	} else {
		ops = append(ops, Transliterate, StripNonASCII, StripDigitsPunct)
	}
	return append(ops, TrimSpace)
}

// Clean normalizes the token sequence in place and returns the pipeline
// for chaining. Cleaning already-cleaned output is a no-op: every
// transform is a fixed point on canonical tokens.
func (p *Pipeline) Clean() Cleaner {
	if p.spec.truncateSubtitle {
		p.tokens = TruncateAtStrongPunctuation(p.tokens)
	}
	if p.spec.stripDelimited {
		p.tokens = RemoveBetweenDelimiters(p.tokens, "(", ")")
		p.tokens = RemoveBetweenDelimiters(p.tokens, "[", "]")
	}
	if p.spec.filterShort {
		p.tokens = filterMinLength(p.tokens, p.minLen)
	}

	for i := range p.tokens {
		for _, op := range p.ops {
			op(&p.tokens[i])
		}
	}

	if p.stops != nil {
		p.tokens = filterStopwords(p.tokens, p.stops)
	}
	p.tokens = purgeEmpty(p.tokens)
	return p
}

// Stem replaces each token with its stem form in the selected language,
// leaving tokens whose stem equals the token untouched. It requires the
// Stemming option and should run after Clean so the stemmer sees
// normalized tokens. An unsupported language is rejected before any token
// is modified.
func (p *Pipeline) Stem(lang stem.Language) error {
	if !p.stemming {
		return internalerr.ErrStemmingDisabled
	}
	stemmer, err := stem.New(lang)
	if err != nil {
		return err
	}
	for i := range p.tokens {
		s := p.tokens[i].String()
		if stemmed := stemmer.Stem(s); stemmed != s {
			p.tokens[i].Replace(stemmed)
		}
	}
	return nil
}

// Tokens copies the current token values out of the pipeline.
func (p *Pipeline) Tokens() []string {
	return p.tokens.Strings()
}

// Sequence exposes the underlying token sequence, including each token's
// ownership tag.
func (p *Pipeline) Sequence() token.Sequence {
	return p.tokens
}

// SetMinLength reconfigures the inclusive length threshold before Clean
// runs. Tokens of byte length less than or equal to min are dropped. The
// Author variant has no length filter, so the setting has no effect there.
func (p *Pipeline) SetMinLength(min int) {
	p.minLen = min
}
