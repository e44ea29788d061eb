package utils

import "math"

// LocationEpsilonDeg is the minimum per-axis movement (~11 m) before a new
// driver position is worth persisting.
const LocationEpsilonDeg = 0.0001

// WithinEpsilon reports whether two readings are too close to bother writing.
func WithinEpsilon(lat1, lng1, lat2, lng2 float64) bool {
	return math.Abs(lat1-lat2) < LocationEpsilonDeg &&
		math.Abs(lng1-lng2) < LocationEpsilonDeg
}

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
