package utils

import "math"

// EarthRadiusKm is the mean earth radius used by the nearby-donation queries.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in km between two
// latitude/longitude pairs, using the asin form of the Haversine formula.
// The SQL nearby query uses the algebraically equivalent acos form; both
// agree to floating-point tolerance.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// HaversineAcosKm mirrors the SQL expression used by the nearby query.
func HaversineAcosKm(lat1, lng1, lat2, lng2 float64) float64 {
	inner := math.Cos(radians(lat1))*math.Cos(radians(lat2))*
		math.Cos(radians(lng2)-radians(lng1)) +
		math.Sin(radians(lat1))*math.Sin(radians(lat2))
	// Clamp against rounding drift outside acos' domain.
	inner = math.Min(1, math.Max(-1, inner))
	return EarthRadiusKm * math.Acos(inner)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
