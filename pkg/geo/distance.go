// Package geo provides great-circle distance math over WGS84 coordinates
package geo

import "github.com/golang/geo/s2"

const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two points
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	from := s2.LatLngFromDegrees(lat1, lon1)
	to := s2.LatLngFromDegrees(lat2, lon2)
	return from.Distance(to).Radians() * EarthRadiusMeters
}

// DistanceKm returns the great-circle distance in kilometers
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceMeters(lat1, lon1, lat2, lon2) / 1000.0
}
