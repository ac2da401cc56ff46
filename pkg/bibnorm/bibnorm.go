// Package bibnorm normalizes tokenized bibliographic metadata into a
// canonical, comparable form for record-alignment tasks.
//
// Input is pre-tokenized (whitespace-delimited, punctuation preserved).
// Output is a reduced, lowercase, ASCII-folded token sequence suitable for
// exact or fuzzy matching. The package-level functions cover the common
// cases with default settings; pkg/bibnorm/clean exposes the configurable
// pipeline engine underneath.
package bibnorm

import "github.com/cognicore/bibnorm/pkg/bibnorm/clean"

// CleanTitle normalizes one title's token sequence. Subtitles after the
// first strong punctuation mark and parenthesized or bracketed spans are
// dropped, short tokens are filtered, and the remaining tokens are
// lowercased and ASCII-folded. Total over any input, including empty.
func CleanTitle(tokens []string) []string {
	return clean.NewTitle(tokens).Clean().Tokens()
}

// CleanAuthor normalizes one author-name token sequence. Parenthesized and
// bracketed spans (life dates, roles) are dropped and the remaining tokens
// are lowercased and ASCII-folded; single-letter initials are kept. Total
// over any input, including empty.
func CleanAuthor(tokens []string) []string {
	return clean.NewAuthor(tokens).Clean().Tokens()
}

// CleanText normalizes a free-form token sequence with the default length
// filter. Total over any input, including empty.
func CleanText(tokens []string) []string {
	return clean.NewText(tokens).Clean().Tokens()
}
