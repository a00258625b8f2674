package rulelist

import "strings"

// Filter returns the lines that are well-formed domain block rules, in their
// original order. Comments, section headers, lines that do not have the shape
// "||domain^", and rules whose domain ends in a blocked country-code suffix
// are dropped.
func Filter(lines []string) []string {
	rules := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "!") || strings.HasPrefix(line, "[") {
			continue
		}
		if !isRule(line) {
			continue
		}
		if countrySuffixes.Match(Domain(line)) {
			continue
		}
		rules = append(rules, line)
	}
	return rules
}

// isRule returns whether line is a bare domain block rule: a double pipe,
// one or more non-caret bytes, and a single trailing caret.
func isRule(line string) bool {
	return len(line) > 3 &&
		line[0] == '|' && line[1] == '|' &&
		line[len(line)-1] == '^' &&
		strings.IndexByte(line[2:len(line)-1], '^') == -1
}
