package validation

import (
	"regexp"
	"strings"
)

var (
	iataRegex         = regexp.MustCompile(`^[A-Z]{3}$`)
	flightNumberRegex = regexp.MustCompile(`^[A-Z]{2,3}\d{2,4}[A-Z]?$`)
)

// IsValidIATACode reports whether code is exactly 3 uppercase ASCII letters.
// Callers wanting lenient lookup canonicalize before validating.
func IsValidIATACode(code string) bool {
	return iataRegex.MatchString(code)
}

// IsValidFlightNumber validates a flight number in canonical form
func IsValidFlightNumber(number string) bool {
	return flightNumberRegex.MatchString(number)
}

// CanonicalFlightNumber uppercases a flight designator and strips interior
// whitespace, so "kl 456" and "KL456" compare equal.
func CanonicalFlightNumber(number string) string {
	return strings.ToUpper(strings.Join(strings.Fields(number), ""))
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
