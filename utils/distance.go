package utils

import (
	"fmt"
	"math"
	"sort"

	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
)

// CalculateDistance returns the great-circle distance between two points in
// kilometers using the haversine formula.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371.0 // Earth's radius in kilometers

	// Convert coordinates to radians
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	// Calculate differences
	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	// Haversine formula
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadius * c

	return distance
}

// RankedBranch pairs a branch with its distance from the query point.
type RankedBranch struct {
	Branch       models.Branch `json:"branch"`
	DistanceKm   float64       `json:"distance_km"`
	DistanceText string        `json:"distance_text"`
}

// Nearest ranks branches by distance from origin, ascending, and returns at
// most k results. Branches at the (0,0) "location unknown" sentinel are
// excluded before ranking. Ties keep their input order.
func Nearest(origin models.GeoPoint, branches []models.Branch, k int) []RankedBranch {
	ranked := make([]RankedBranch, 0, len(branches))
	for _, b := range branches {
		if b.Location.IsUnknown() {
			continue
		}
		km := CalculateDistance(origin.Latitude, origin.Longitude, b.Location.Latitude, b.Location.Longitude)
		ranked = append(ranked, RankedBranch{
			Branch:       b,
			DistanceKm:   km,
			DistanceText: FormatDistance(km),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// FormatDistance renders a distance the way the site shows it: meters below
// one kilometer, otherwise one decimal of kilometers.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm away", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km away", km)
}
