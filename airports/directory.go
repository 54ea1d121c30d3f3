// Package airports holds the static airport directory used to resolve
// IATA codes found in calendar text and manual entries.
package airports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/pkg/geo"
	"github.com/adrianrdguez/GoFast/pkg/validation"
)

// Directory is an immutable lookup table of known airports.
// Safe for concurrent reads after construction.
type Directory struct {
	byCode map[string]models.Airport
	codes  []string
}

// NewDirectory builds a directory from the given airports. Codes are
// canonicalized to uppercase and must be well-formed IATA codes.
func NewDirectory(airports []models.Airport) (*Directory, error) {
	byCode := make(map[string]models.Airport, len(airports))
	codes := make([]string, 0, len(airports))
	for _, airport := range airports {
		code := strings.ToUpper(strings.TrimSpace(airport.Code))
		if !validation.IsValidIATACode(code) {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid IATA code %q", airport.Code))
		}
		if _, exists := byCode[code]; exists {
			return nil, errors.NewValidationError(fmt.Sprintf("duplicate airport code %q", code))
		}
		airport.Code = code
		byCode[code] = airport
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return &Directory{byCode: byCode, codes: codes}, nil
}

// Find resolves a code case-insensitively. Malformed codes simply miss.
func (d *Directory) Find(code string) (models.Airport, bool) {
	airport, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return airport, ok
}

// MustFind resolves a code or panics. Intended for seed data and tests.
func (d *Directory) MustFind(code string) models.Airport {
	airport, ok := d.Find(code)
	if !ok {
		panic(fmt.Sprintf("airports: unknown code %q", code))
	}
	return airport
}

// Contains reports whether the code resolves to a known airport
func (d *Directory) Contains(code string) bool {
	_, ok := d.Find(code)
	return ok
}

// Codes returns all known codes in sorted order
func (d *Directory) Codes() []string {
	out := make([]string, len(d.codes))
	copy(out, d.codes)
	return out
}

// Len returns the number of airports in the directory
func (d *Directory) Len() int {
	return len(d.codes)
}

// DistanceKm returns the great-circle distance from an origin to an airport
func DistanceKm(from models.Coordinate, to models.Airport) float64 {
	return geo.DistanceKm(from.Latitude, from.Longitude, to.Coordinate.Latitude, to.Coordinate.Longitude)
}
