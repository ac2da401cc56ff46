package clean

import (
	"strings"

	"github.com/cognicore/bibnorm/pkg/bibnorm/token"
)

// Sequence transforms. All filtering keeps surviving tokens in their
// original relative order.

// RemoveBetweenDelimiters drops every span of tokens running from a token
// that starts with open to the next token (including the start token
// itself) that ends with close, both ends inclusive. A start marker with no
// matching end leaves the sequence untouched from that point on.
//
//	["lorem", "(ipsum", "dolor)", "sit"]  →  ["lorem", "sit"]
//	["a", "(b", "c"]                      →  unchanged
func RemoveBetweenDelimiters(seq token.Sequence, open, close string) token.Sequence {
	for {
		start := -1
		for i, t := range seq {
			if strings.HasPrefix(t.String(), open) {
				start = i
				break
			}
		}
		if start < 0 {
			return seq
		}
		end := -1
		for i := start; i < len(seq); i++ {
			if strings.HasSuffix(seq[i].String(), close) {
				end = i
				break
			}
		}
		if end < 0 {
			return seq
		}
		seq = append(seq[:start], seq[end+1:]...)
	}
}

// TruncateAtStrongPunctuation cuts the sequence strictly before the first
// token ending in a strong punctuation mark (".", ":", "?", "!"). This
// drops the subtitle after the main title's terminal punctuation. With no
// such token the sequence is returned unchanged.
func TruncateAtStrongPunctuation(seq token.Sequence) token.Sequence {
	for i, t := range seq {
		if endsWithStrongPunct(t.String()) {
			return seq[:i]
		}
	}
	return seq
}

func endsWithStrongPunct(s string) bool {
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', ':', '?', '!':
		return true
	}
	return false
}

// filterMinLength drops tokens whose byte length is less than or equal to
// min. The comparison is inclusive: the default threshold of 3 keeps only
// tokens of length 4 and up.
func filterMinLength(seq token.Sequence, min int) token.Sequence {
	kept := seq[:0]
	for _, t := range seq {
		if t.Len() > min {
			kept = append(kept, t)
		}
	}
	return kept
}

// purgeEmpty drops tokens that the per-token transforms emptied out.
func purgeEmpty(seq token.Sequence) token.Sequence {
	kept := seq[:0]
	for _, t := range seq {
		if t.Len() > 0 {
			kept = append(kept, t)
		}
	}
	return kept
}

// filterStopwords drops tokens present in the stoplist. It runs after the
// per-token transforms, so entries are matched against normalized forms.
func filterStopwords(seq token.Sequence, stops map[string]struct{}) token.Sequence {
	kept := seq[:0]
	for _, t := range seq {
		if _, ok := stops[t.String()]; !ok {
			kept = append(kept, t)
		}
	}
	return kept
}
