// Package slug derives URL-safe group identifiers from display names.
//
// The derivation is deterministic and idempotent: lowercase, runs of
// non-alphanumeric characters collapse to a single '-', and leading or
// trailing separators are trimmed. Two names that reduce to the same
// slug are a name conflict (enforced by the unique index on
// groups.slug).
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make returns the slug for a group name. An empty result (e.g. a name
// of only punctuation) is possible and rejected by the caller's
// validation, not here.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
