package ais

import (
	"math"
	"testing"

	"github.com/ngmaloney/signalk-terminal/internal/models"
)

func TestDistance_IdenticalPoints(t *testing.T) {
	p := models.Position{Latitude: 60.1699, Longitude: 24.9384}
	if got := Distance(p, p); got != 0 {
		t.Errorf("Distance(p, p) = %v, want 0", got)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 models.Position
	}{
		{"land's end to john o'groats", models.Position{Latitude: 50.0661, Longitude: -5.7144}, models.Position{Latitude: 58.6441, Longitude: -3.0700}},
		{"across antimeridian", models.Position{Latitude: -16.5, Longitude: 179.9}, models.Position{Latitude: -16.4, Longitude: -179.8}},
		{"short hop", models.Position{Latitude: 0, Longitude: 0}, models.Position{Latitude: 0.0001, Longitude: 0.0001}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Distance(tt.p1, tt.p2)
			ba := Distance(tt.p2, tt.p1)
			if ab != ba {
				t.Errorf("Distance not symmetric: %v vs %v", ab, ba)
			}
		})
	}
}

func TestDistance_KnownFixture(t *testing.T) {
	landsEnd := models.Position{Latitude: 50.0661, Longitude: -5.7144}
	johnOGroats := models.Position{Latitude: 58.6441, Longitude: -3.0700}

	got := Distance(landsEnd, johnOGroats)

	// Textbook figure is 968.9 km
	if math.Abs(got-968904.640) > 0.0005 {
		t.Errorf("Distance() = %.3f, want 968904.640", got)
	}
	if math.Abs(got-968853) > 100 {
		t.Errorf("Distance() = %.3f, more than 100 m from 968853", got)
	}
}

func TestDistance_RoundsToMillimetres(t *testing.T) {
	origin := models.Position{}
	tenMetresEast := models.Position{Longitude: 0.0000899322}

	raw := HaversineDistance(origin, tenMetresEast)
	if raw == 10 {
		t.Fatalf("fixture should not be exact, got raw %v", raw)
	}

	if got := Distance(origin, tenMetresEast); got != 10 {
		t.Errorf("Distance() = %v, want 10", got)
	}
}
