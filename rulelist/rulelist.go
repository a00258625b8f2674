package rulelist

import (
	"fmt"
	"slices"

	"lukechampine.com/blake3"
)

// Result summarizes an optimization pass over a filter list.
type Result struct {
	// RuleCount is the number of rules in the optimized list.
	RuleCount int

	// Digest is the BLAKE3-256 digest of the optimized rules.
	Digest [32]byte
}

// OptimizeFile optimizes the filter list at the named path in place: it keeps
// only well-formed domain block rules, drops rules for blocked country-code
// suffixes, removes duplicates, sorts the remainder by domain, and overwrites
// the file with a fresh metadata header followed by the rules.
func OptimizeFile(name string) (Result, error) {
	lines, err := ReadLines(name)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read filter list %s: %w", name, err)
	}

	rules := Dedup(Filter(lines))
	Sort(rules)

	header := Header(name, len(rules))
	if err = WriteFile(name, slices.Concat(header, rules)); err != nil {
		return Result{}, fmt.Errorf("failed to write filter list %s: %w", name, err)
	}

	return Result{
		RuleCount: len(rules),
		Digest:    Digest(rules),
	}, nil
}

// Dedup returns rules with exact duplicates removed. The first occurrence of
// each rule keeps its original relative position.
func Dedup(rules []string) []string {
	seen := make(map[string]struct{}, len(rules))
	unique := make([]string, 0, len(rules))
	for _, rule := range rules {
		if _, ok := seen[rule]; ok {
			continue
		}
		seen[rule] = struct{}{}
		unique = append(unique, rule)
	}
	return unique
}

// Digest returns the BLAKE3-256 digest of the rule lines, computed over each
// rule followed by a newline. The header is not part of the digest, so lists
// with identical rule content have identical digests regardless of when they
// were written.
func Digest(rules []string) [32]byte {
	return blake3.Sum256(appendLines(make([]byte, 0, linesSize(rules)), rules))
}
