package bytestrings

import (
	"slices"
	"testing"
)

const multiline = "\n1\r\n 2 \n\n\t\n3\r\n\r\n4"

func TestTrimmedNonEmptyLines(t *testing.T) {
	expectedLines := []string{"1", "2", "3", "4"}
	lines := slices.AppendSeq(make([]string, 0, len(expectedLines)), TrimmedNonEmptyLines(multiline))
	if !slices.Equal(lines, expectedLines) {
		t.Errorf("Expected lines %v, got %v", expectedLines, lines)
	}
}

func TestTrimmedNonEmptyLinesEmpty(t *testing.T) {
	for line := range TrimmedNonEmptyLines("") {
		t.Errorf("Unexpected line %q", line)
	}
	for line := range TrimmedNonEmptyLines(" \n\r\n\t\n") {
		t.Errorf("Unexpected line %q", line)
	}
}

func TestTrimmedNonEmptyLinesEarlyStop(t *testing.T) {
	var lines []string
	for line := range TrimmedNonEmptyLines(multiline) {
		lines = append(lines, line)
		if len(lines) == 2 {
			break
		}
	}
	expectedLines := []string{"1", "2"}
	if !slices.Equal(lines, expectedLines) {
		t.Errorf("Expected lines %v, got %v", expectedLines, lines)
	}
}
