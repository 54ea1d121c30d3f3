// Package parser provides pure text extraction over free-form calendar text.
// All matching is first-match-wins in left-to-right scan order; callers rely
// on that ordering, so patterns must not be reordered casually.
package parser

import (
	"regexp"
	"strings"

	"github.com/adrianrdguez/GoFast/airports"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/pkg/validation"
)

var (
	iataTokenPattern    = regexp.MustCompile(`\b[A-Z]{3}\b`)
	flightNumberPattern = regexp.MustCompile(`\b[A-Z]{2,3} ?\d{2,4}[A-Z]?\b`)

	// Ordered: numeric terminal forms before the single-letter form.
	terminalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bterminal\s+(\d+)\b`),
		regexp.MustCompile(`(?i)\bt(\d+)\b`),
		regexp.MustCompile(`(?i)\bterminal\s+([a-z])\b`),
	}

	// Ordered: lettered gates before bare numbers before the short form.
	gatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bgate\s+([a-z]\d+)\b`),
		regexp.MustCompile(`(?i)\bgate\s+(\d+)\b`),
		regexp.MustCompile(`(?i)\bg(\d+)\b`),
	}
)

// ExtractIATACode scans text for 3-uppercase-letter tokens and returns the
// first one that resolves in the directory.
func ExtractIATACode(text string, directory *airports.Directory) (models.Airport, bool) {
	for _, token := range iataTokenPattern.FindAllString(text, -1) {
		if airport, ok := directory.Find(token); ok {
			return airport, true
		}
	}
	return models.Airport{}, false
}

// ExtractFlightNumber returns the first flight-number-shaped token in
// canonical form (uppercase, interior space removed), or "" when none match.
func ExtractFlightNumber(text string) string {
	match := flightNumberPattern.FindString(text)
	if match == "" {
		return ""
	}
	return validation.CanonicalFlightNumber(match)
}

// ExtractAirline returns the two-letter airline prefix of a flight number
func ExtractAirline(flightNumber string) string {
	if len(flightNumber) < 2 {
		return ""
	}
	return strings.ToUpper(flightNumber[:2])
}

// ExtractTerminal returns the terminal designator mentioned in text, or ""
func ExtractTerminal(text string) string {
	return firstSubmatch(terminalPatterns, text)
}

// ExtractGate returns the gate designator mentioned in text, or ""
func ExtractGate(text string) string {
	return firstSubmatch(gatePatterns, text)
}

func firstSubmatch(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return strings.ToUpper(match[1])
		}
	}
	return ""
}

// ContainsFlightKeyword reports whether text mentions air travel in any of
// the supported languages. Matching is case-insensitive substring search.
func ContainsFlightKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range flightKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
