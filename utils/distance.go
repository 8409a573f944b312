package utils

import (
	"math"
)

const (
	// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
	EarthRadiusMeters = 6371000.0

	// FallbackSegmentMeters is substituted for the length of an inter-stop
	// segment when either endpoint lacks geodata. Keeps distance sums bounded
	// instead of failing on incomplete datasets.
	FallbackSegmentMeters = 400.0
)

// DistanceMeters returns the great-circle distance between two coordinates
// using the haversine formula. Pure and deterministic; callers must not pass
// coordinates of stops without geodata.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// DistanceKM returns the great-circle distance in kilometers.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceMeters(lat1, lon1, lat2, lon2) / 1000.0
}
