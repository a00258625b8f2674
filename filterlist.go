// Package filterlist is the root package of filterlist-go,
// an optimizer for Adblock-style domain block lists.
package filterlist

// Version is the current version of filterlist-go.
const Version = "1.3.0"
