package rulelist

import (
	"slices"
	"strings"
)

// Sort sorts rules in place in ascending order by second-level domain label,
// breaking ties by full domain. The sort is stable and compares plain bytes.
func Sort(rules []string) {
	slices.SortStableFunc(rules, compareRules)
}

func compareRules(a, b string) int {
	da, db := Domain(a), Domain(b)
	if c := strings.Compare(secondLevelLabel(da), secondLevelLabel(db)); c != 0 {
		return c
	}
	return strings.Compare(da, db)
}

// Domain extracts the domain of a rule: the text after the last double-pipe
// marker and before the caret that follows it.
func Domain(rule string) string {
	if i := strings.LastIndex(rule, "||"); i != -1 {
		rule = rule[i+2:]
	}
	if i := strings.IndexByte(rule, '^'); i != -1 {
		rule = rule[:i]
	}
	return rule
}

// secondLevelLabel returns the second-to-last dot-separated label of domain,
// or the whole domain if it has a single label.
func secondLevelLabel(domain string) string {
	last := strings.LastIndexByte(domain, '.')
	if last == -1 {
		return domain
	}
	prev := strings.LastIndexByte(domain[:last], '.')
	return domain[prev+1 : last]
}
