// Package corpus reads delimited corpus files for the demo CLI. One line
// is one record; tokens are whitespace fields with punctuation preserved,
// which is the input shape the cleaning pipeline expects.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Record is one corpus line, pre-tokenized.
type Record struct {
	Line   int
	Raw    string
	Tokens []string
}

// maxLineSize bounds a single corpus line. Bibliographic titles are short;
// 1 MiB leaves generous room for concatenated author lists.
const maxLineSize = 1 << 20

// EachRecord streams path line by line, calling fn for every non-blank
// line. Processing stops at the first error fn returns.
func EachRecord(path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := fn(Record{Line: lineNo, Raw: line, Tokens: fields}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read corpus %s: %w", path, err)
	}
	return nil
}
