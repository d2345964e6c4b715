// Package normalize canonicalizes user-supplied identity fields before
// they are stored or compared.
package normalize

import "strings"

// Email lowercases and trims an email address. All email storage and
// lookup goes through this so that case variants collide.
func Email(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Name trims surrounding whitespace but preserves case.
func Name(name string) string {
	return strings.TrimSpace(name)
}
