package rulelist

import (
	"os"
	"strings"

	"github.com/database64128/filterlist-go/bytestrings"
	"github.com/database64128/filterlist-go/mmap"
)

// ReadLines reads the named file and returns its lines in order, each trimmed
// of surrounding whitespace, with blank lines dropped.
func ReadLines(name string) ([]string, error) {
	data, release, err := mmap.ReadFile(name)
	if err != nil {
		return nil, err
	}
	defer release()

	lines := make([]string, 0, strings.Count(data, "\n")+1)
	for line := range bytestrings.TrimmedNonEmptyLines(data) {
		// The line is cloned so that it stays valid after the mapping is
		// released and the file is overwritten.
		lines = append(lines, strings.Clone(line))
	}
	return lines, nil
}

// WriteFile writes lines to the named file, one per line, each followed by a
// newline, replacing any previous content.
func WriteFile(name string, lines []string) error {
	return os.WriteFile(name, appendLines(make([]byte, 0, linesSize(lines)), lines), 0644)
}

func appendLines(b []byte, lines []string) []byte {
	for _, line := range lines {
		b = append(b, line...)
		b = append(b, '\n')
	}
	return b
}

func linesSize(lines []string) (size int) {
	for _, line := range lines {
		size += len(line) + 1
	}
	return
}
