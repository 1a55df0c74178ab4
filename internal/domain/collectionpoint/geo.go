package collectionpoint

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// ValidateCoordinates accepts both nil (unknown location) or both set
// within WGS84 ranges.
func ValidateCoordinates(lat, lng *float64) error {
	if lat == nil && lng == nil {
		return nil
	}
	if lat == nil || lng == nil {
		return fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidCoordinates)
	}
	if math.IsNaN(*lat) || *lat < -90 || *lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinates, *lat)
	}
	if math.IsNaN(*lng) || *lng < -180 || *lng > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinates, *lng)
	}
	return nil
}

// DistanceKm is the great-circle (haversine) distance between two points.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}
