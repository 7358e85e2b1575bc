// Package tracking instruments outbound affiliate links: opaque click
// identifiers, UTM campaign parameters, and a fire-and-forget beacon.
package tracking

import (
	"regexp"

	"github.com/google/uuid"
)

// Canonical 8-4-4-4-12 form with version nibble 4 and RFC 4122 variant.
// Braced, URN, and undashed encodings are rejected on purpose.
var clickIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// GenerateClickID returns a new random click identifier. Uniqueness is
// probabilistic; there is no collision checking.
func GenerateClickID() string {
	return uuid.NewString()
}

// ValidClickID reports whether a value is a well-formed click identifier.
// Empty or malformed input yields false, never an error.
func ValidClickID(v string) bool {
	return clickIDPattern.MatchString(v)
}
