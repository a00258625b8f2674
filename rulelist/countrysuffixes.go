package rulelist

import "strings"

// suffixSet is a set of final domain labels.
type suffixSet map[string]struct{}

// suffixSetFromSlice creates a [suffixSet] from a slice of labels.
func suffixSetFromSlice(labels []string) suffixSet {
	s := make(suffixSet, len(labels))
	for _, label := range labels {
		s[label] = struct{}{}
	}
	return s
}

// Match returns whether the final dot-separated label of domain is in the set.
// The label only matches when a literal dot precedes it, so a domain that is
// a bare label does not match.
func (s suffixSet) Match(domain string) bool {
	i := strings.LastIndexByte(domain, '.')
	if i == -1 {
		return false
	}
	_, ok := s[domain[i+1:]]
	return ok
}

// countrySuffixes is the fixed set of two-letter country-code suffixes
// excluded from optimized lists. International and Chinese domains are
// deliberately absent.
var countrySuffixes = suffixSetFromSlice([]string{
	"jp", "kr", "pl", "uk", "de", "fr", "it", "ru", "es", "ca", "au", "ch", "se", "br", "za", "in", "id", "vn", "th", "my",
	"ar", "mx", "ph", "cl", "nz", "pt", "be", "no", "fi", "gr", "tr", "sa", "ae", "hk", "sg", "tw", "dk", "ie", "cz", "hu",
	"ro", "bg", "sk", "lt", "lv", "ee", "is", "mt", "cy", "rs", "si", "hr", "ba", "mk", "me", "al", "ge", "am", "az", "by",
	"kg", "kz", "md", "tj", "tm", "uz", "ua", "pk", "np", "lk", "bd", "kh", "la", "mm", "bt", "bn", "mn", "af", "ir", "iq",
	"jo", "lb", "om", "qa", "kw", "bh", "ye", "sy", "ps", "dz", "ma", "tn", "ly", "eg", "sd", "et", "ng", "gh", "ci", "sn",
	"ke", "tz", "ug", "zm", "zw", "mw", "bw", "na", "sz", "ls", "mg", "mu", "sc", "cv", "gw", "gq", "st", "ga", "cg", "cd",
	"ao", "cm", "ne", "bf", "ml", "td", "mr", "sl", "lr", "gm", "gn", "bj", "tg", "bi", "rw", "so", "dj", "er", "ss",
})
