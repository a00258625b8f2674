package bytestrings

import (
	"iter"
	"strings"
)

// TrimmedNonEmptyLines returns an iterator over the lines of text, each
// trimmed of surrounding whitespace. Lines that are empty after trimming
// are skipped.
func TrimmedNonEmptyLines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(text) > 0 {
			line := text
			if i := strings.IndexByte(text, '\n'); i != -1 {
				line, text = text[:i], text[i+1:]
			} else {
				text = ""
			}
			line = strings.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
