package clean

import (
	"errors"
	"testing"

	"github.com/cognicore/bibnorm/pkg/bibnorm/internalerr"
	"github.com/cognicore/bibnorm/pkg/bibnorm/stem"
)

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTitleEndToEnd(t *testing.T) {
	in := []string{"Lorem", "ipsum", "dolor", ":", "sit", "amet"}
	got := NewTitle(in).Clean().Tokens()

	want := []string{"lorem", "ipsum", "dolor"}
	if !equalTokens(got, want) {
		t.Errorf("Title clean(%v) = %v, want %v", in, got, want)
	}
}

func TestAuthorEndToEnd(t *testing.T) {
	in := []string{"John", "W.", "Doe", "(1950-2020)"}
	got := NewAuthor(in).Clean().Tokens()

	want := []string{"john", "w", "doe"}
	if !equalTokens(got, want) {
		t.Errorf("Author clean(%v) = %v, want %v", in, got, want)
	}
}

func TestAuthorKeepsInitials(t *testing.T) {
	// No length filter on the author variant: single-letter initials stay.
	in := []string{"J.", "R.", "R.", "Tolkien"}
	got := NewAuthor(in).Clean().Tokens()

	want := []string{"j", "r", "r", "tolkien"}
	if !equalTokens(got, want) {
		t.Errorf("Author clean(%v) = %v, want %v", in, got, want)
	}
}

func TestTitleMinLengthBoundary(t *testing.T) {
	// "sit" has length 3, equal to the default threshold, so it is dropped.
	in := []string{"Lorem", "ipsum", "dolor", "sit", "amet"}
	got := NewTitle(in).Clean().Tokens()

	want := []string{"lorem", "ipsum", "dolor", "amet"}
	if !equalTokens(got, want) {
		t.Errorf("Title clean(%v) = %v, want %v", in, got, want)
	}
}

func TestTextEndToEnd(t *testing.T) {
	in := []string{"Lorem", "ipsum", "dolor", ":", "sit", "amet"}
	got := NewText(in).Clean().Tokens()

	// Text runs no subtitle truncation: only the length filter and the
	// per-token transforms apply.
	want := []string{"lorem", "ipsum", "dolor", "amet"}
	if !equalTokens(got, want) {
		t.Errorf("Text clean(%v) = %v, want %v", in, got, want)
	}
}

func TestSetMinLength(t *testing.T) {
	in := []string{"Lorem", "ipsum", "dolor", "sit", "amet"}
	p := NewTitle(in)
	p.SetMinLength(4)
	got := p.Clean().Tokens()

	// Inclusive threshold: "amet" (4) now falls too.
	want := []string{"lorem", "ipsum", "dolor"}
	if !equalTokens(got, want) {
		t.Errorf("Title clean(%v) with min 4 = %v, want %v", in, got, want)
	}
}

func TestAccentedTitle(t *testing.T) {
	in := []string{"École", "Polytechnique", "Fédérale"}
	got := NewTitle(in).Clean().Tokens()

	want := []string{"ecole", "polytechnique", "federale"}
	if !equalTokens(got, want) {
		t.Errorf("Title clean(%v) = %v, want %v", in, got, want)
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := [][]string{
		{"Lorem", "ipsum", "dolor", ":", "sit", "amet"},
		{"École", "(1886)", "Polytechnique"},
		{"John", "W.", "Doe", "(1950-2020)"},
	}
	for _, in := range inputs {
		for _, v := range []Variant{Text, Title, Author} {
			once := New(v, in, Options{}).Clean().Tokens()
			twice := New(v, once, Options{}).Clean().Tokens()
			if !equalTokens(once, twice) {
				t.Errorf("%s clean not idempotent on %v: first %v, second %v", v, in, once, twice)
			}
		}
	}
}

func TestCanonicalInputStaysViews(t *testing.T) {
	// Tokens already lowercase, ASCII and punctuation-free cost no
	// allocation through the whole pipeline.
	in := []string{"lorem", "ipsum", "dolor", "amet"}
	p := NewTitle(in)
	p.Clean()

	seq := p.Sequence()
	if len(seq) != len(in) {
		t.Fatalf("Expected %d tokens, got %d", len(in), len(seq))
	}
	if n := seq.CountOwned(); n != 0 {
		t.Errorf("Canonical input produced %d owned tokens, want 0", n)
	}
}

func TestMixedInputOwnership(t *testing.T) {
	in := []string{"Lorem", "ipsum"}
	p := NewTitle(in)
	p.Clean()

	seq := p.Sequence()
	if !seq[0].IsOwned() {
		t.Error("Lowercased token should be owned")
	}
	if seq[1].IsOwned() {
		t.Error("Untouched token should stay a view")
	}
}

func TestDecodeEntitiesOption(t *testing.T) {
	in := []string{"Pride", "&amp;", "Prejudice"}

	withDecode := New(Title, in, Options{MinTokenLength: 1, DecodeEntities: true}).Clean().Tokens()
	want := []string{"pride", "prejudice"}
	if !equalTokens(withDecode, want) {
		t.Errorf("Clean with entity decoding = %v, want %v", withDecode, want)
	}

	// Without the option the stage does not exist: "&amp;" is handled by
	// the punctuation strip instead.
	without := New(Title, in, Options{MinTokenLength: 1}).Clean().Tokens()
	wantWithout := []string{"pride", "amp", "prejudice"}
	if !equalTokens(without, wantWithout) {
		t.Errorf("Clean without entity decoding = %v, want %v", without, wantWithout)
	}
}

func TestStopwordsOption(t *testing.T) {
	in := []string{"The", "History", "of", "the", "Decline"}
	got := New(Text, in, Options{MinTokenLength: 1, Stopwords: []string{"the", "OF"}}).Clean().Tokens()

	want := []string{"history", "decline"}
	if !equalTokens(got, want) {
		t.Errorf("Clean with stopwords = %v, want %v", got, want)
	}
}

func TestStemRequiresOption(t *testing.T) {
	p := NewTitle([]string{"running", "quickly"})
	p.Clean()

	err := p.Stem(stem.English)
	if !errors.Is(err, internalerr.ErrStemmingDisabled) {
		t.Errorf("Stem without the option: got %v, want ErrStemmingDisabled", err)
	}
}

func TestStemUnsupportedLanguage(t *testing.T) {
	p := New(Title, []string{"running"}, Options{Stemming: true})
	p.Clean()

	err := p.Stem(stem.Language("klingon"))
	if !errors.Is(err, internalerr.ErrUnsupportedLanguage) {
		t.Errorf("Stem with unsupported language: got %v, want ErrUnsupportedLanguage", err)
	}
}

func TestStemAfterClean(t *testing.T) {
	p := New(Title, []string{"Running", "Titles", "Here"}, Options{Stemming: true})
	p.Clean()
	if err := p.Stem(stem.English); err != nil {
		t.Fatalf("Stem failed: %v", err)
	}

	got := p.Tokens()
	want := []string{"run", "titl", "here"}
	if !equalTokens(got, want) {
		t.Errorf("Stemmed tokens = %v, want %v", got, want)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, v := range []Variant{Text, Title, Author} {
		got := New(v, nil, Options{}).Clean().Tokens()
		if len(got) != 0 {
			t.Errorf("%s clean of empty input = %v, want empty", v, got)
		}
	}
}

func TestAllFilteredOut(t *testing.T) {
	// Everything is stripped or filtered away: a valid terminal state, not
	// an error.
	in := []string{"1990", "!!", "a", "..."}
	got := NewTitle(in).Clean().Tokens()
	if len(got) != 0 {
		t.Errorf("Expected empty output, got %v", got)
	}
}

func TestUnterminatedDelimiterEndToEnd(t *testing.T) {
	in := []string{"lorem", "(ipsum", "dolor", "amet"}
	got := NewTitle(in).Clean().Tokens()

	// The unterminated span is left in place; its tokens flow through the
	// per-token transforms like any other.
	want := []string{"lorem", "ipsum", "dolor", "amet"}
	if !equalTokens(got, want) {
		t.Errorf("Title clean(%v) = %v, want %v", in, got, want)
	}
}

func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{Text, "text"},
		{Title, "title"},
		{Author, "author"},
		{Variant(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", int(tt.v), got, tt.want)
		}
	}
}
