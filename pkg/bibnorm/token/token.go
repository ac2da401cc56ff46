// Package token defines the ownership-tagged token type the cleaning
// pipeline operates on.
//
// A Token is either a view into the caller's backing strings (the state
// every token starts in, costing no allocation) or an owned value that a
// transform produced because its output differed from its input. The tag
// makes the pipeline's allocation behavior observable: counting owned
// tokens after a clean pass tells you exactly how many tokens needed any
// rewriting at all.
package token

// Token is a string value tagged with its ownership.
//
// A view token references caller-supplied storage and is valid only as
// long as that storage lives. An owned token is independent of the input.
type Token struct {
	value string
	owned bool
}

// View wraps a caller-owned string without copying.
func View(s string) Token {
	return Token{value: s}
}

// Own wraps an independently allocated string.
func Own(s string) Token {
	return Token{value: s, owned: true}
}

// String returns the token's current value.
func (t Token) String() string {
	return t.value
}

// IsOwned reports whether a transform has replaced the token's value.
func (t Token) IsOwned() bool {
	return t.owned
}

// Len returns the byte length of the token's value.
func (t Token) Len() int {
	return len(t.value)
}

// Replace swaps in a new value and marks the token owned. Transforms must
// only call this when the new value differs from the current one; a token
// that is already in canonical form stays a view.
func (t *Token) Replace(s string) {
	t.value = s
	t.owned = true
}

// Sequence is an ordered list of tokens representing one title or one
// author-name list. Filtering operations preserve the relative order of
// surviving tokens.
type Sequence []Token

// NewSequence builds an all-view sequence over the caller's strings.
// No per-token allocation is performed.
func NewSequence(input []string) Sequence {
	seq := make(Sequence, len(input))
	for i, s := range input {
		seq[i] = View(s)
	}
	return seq
}

// Strings copies the current token values out of the sequence.
func (s Sequence) Strings() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.String()
	}
	return out
}

// CountOwned returns how many tokens of the sequence are owned. The
// remainder are still views into the original input.
func (s Sequence) CountOwned() int {
	n := 0
	for _, t := range s {
		if t.IsOwned() {
			n++
		}
	}
	return n
}
