package rulelist

import (
	"strconv"
	"time"
)

const (
	headerTitle       = "! Title: Optimized Adblock Rules"
	headerDescription = "! Description: This is an optimized adblock filter list."

	versionLayout      = "20060102150405"
	lastModifiedLayout = "2006-01-02 15:04:05"
)

// Header returns the 7-line metadata header for an optimized filter list.
// The version and last-modified timestamps are read from the clock
// independently of each other.
func Header(name string, ruleCount int) []string {
	return HeaderAt(name, ruleCount, time.Now(), time.Now())
}

// HeaderAt is like [Header], but with explicit version and last-modified times.
func HeaderAt(name string, ruleCount int, version, lastModified time.Time) []string {
	return []string{
		headerTitle,
		headerDescription,
		"! Source file: " + name,
		"! Version: " + version.Format(versionLayout),
		"! Last Modified: " + lastModified.Format(lastModifiedLayout),
		"! Total Rules: " + strconv.Itoa(ruleCount),
		"!",
	}
}
