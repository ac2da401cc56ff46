package bibnorm

import "testing"

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

func TestCleanTitle(t *testing.T) {
	got := CleanTitle([]string{"Lorem", "ipsum", "dolor", ":", "sit", "amet"})
	want := []string{"lorem", "ipsum", "dolor"}
	if !equalTokens(got, want) {
		t.Errorf("CleanTitle = %v, want %v", got, want)
	}
}

func TestCleanAuthor(t *testing.T) {
	got := CleanAuthor([]string{"John", "W.", "Doe", "(1950-2020)"})
	want := []string{"john", "w", "doe"}
	if !equalTokens(got, want) {
		t.Errorf("CleanAuthor = %v, want %v", got, want)
	}
}

func TestCleanText(t *testing.T) {
	got := CleanText([]string{"Lorem", "ipsum", "dolor", "sit", "amet"})
	want := []string{"lorem", "ipsum", "dolor", "amet"}
	if !equalTokens(got, want) {
		t.Errorf("CleanText = %v, want %v", got, want)
	}
}

func TestTotality(t *testing.T) {
	// Every entry point is total: any input, including empty, yields a
	// valid (possibly empty) output, never a failure.
	cases := [][]string{nil, {}, {""}, {"(", "["}, {"...", "1234"}}
	for _, in := range cases {
		for name, fn := range map[string]func([]string) []string{
			"CleanTitle":  CleanTitle,
			"CleanAuthor": CleanAuthor,
			"CleanText":   CleanText,
		} {
			got := fn(in)
			for _, tok := range got {
				if tok == "" {
					t.Errorf("%s(%v) returned an empty token", name, in)
				}
			}
		}
	}
}
