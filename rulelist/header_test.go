package rulelist

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestHeaderAt(t *testing.T) {
	version := time.Date(2024, 5, 17, 13, 14, 15, 0, time.UTC)
	lastModified := time.Date(2024, 5, 17, 13, 14, 16, 0, time.UTC)
	header := HeaderAt("rules.txt", 42, version, lastModified)
	expectedHeader := []string{
		"! Title: Optimized Adblock Rules",
		"! Description: This is an optimized adblock filter list.",
		"! Source file: rules.txt",
		"! Version: 20240517131415",
		"! Last Modified: 2024-05-17 13:14:16",
		"! Total Rules: 42",
		"!",
	}
	if !slices.Equal(header, expectedHeader) {
		t.Errorf("Expected header %v, got %v", expectedHeader, header)
	}
}

func TestHeader(t *testing.T) {
	header := Header("rules.txt", 0)
	if len(header) != 7 {
		t.Fatalf("Expected 7 header lines, got %d", len(header))
	}
	for _, line := range header {
		if !strings.HasPrefix(line, "!") {
			t.Errorf("Header line %q does not start with '!'", line)
		}
	}
	versionValue, ok := strings.CutPrefix(header[3], "! Version: ")
	if !ok {
		t.Fatalf("Unexpected version line %q", header[3])
	}
	if _, err := time.Parse(versionLayout, versionValue); err != nil {
		t.Errorf("Failed to parse version %q: %v", versionValue, err)
	}
	if header[2] != "! Source file: rules.txt" {
		t.Errorf("Unexpected source file line %q", header[2])
	}
	if header[5] != "! Total Rules: 0" {
		t.Errorf("Unexpected rule count line %q", header[5])
	}
	if header[6] != "!" {
		t.Errorf("Unexpected final line %q", header[6])
	}
}
