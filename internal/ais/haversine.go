// Package ais finds the nearest AIS contact in a SignalK vessel registry
package ais

import (
	"math"

	"github.com/ngmaloney/signalk-terminal/internal/models"
	"github.com/shopspring/decimal"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula
const EarthRadiusMeters = 6371e3

// HaversineDistance calculates the great-circle distance in meters between two points
func HaversineDistance(p1, p2 models.Position) float64 {
	// Convert to radians
	lat1Rad := p1.Latitude * math.Pi / 180
	lat2Rad := p2.Latitude * math.Pi / 180
	deltaLat := (p2.Latitude - p1.Latitude) * math.Pi / 180
	deltaLon := (p2.Longitude - p1.Longitude) * math.Pi / 180

	// Haversine formula
	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Distance returns the haversine distance rounded to millimetres (3 decimal places)
func Distance(p1, p2 models.Position) float64 {
	return decimal.NewFromFloat(HaversineDistance(p1, p2)).Round(3).InexactFloat64()
}
