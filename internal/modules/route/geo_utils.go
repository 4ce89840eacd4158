// README: Pure geographic helpers for straight-line route distance.
package route

import (
	"math"

	"ecoroute/internal/types"
)

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// pathLengthKm sums the straight-line legs between consecutive places, rounded to 0.01 km.
func pathLengthKm(places []types.ResolvedPlace) float64 {
	var total float64
	for i := 1; i < len(places); i++ {
		prev, cur := places[i-1], places[i]
		total += haversineKm(prev.Lat, prev.Lng, cur.Lat, cur.Lng)
	}
	return math.Round(total*100) / 100
}
