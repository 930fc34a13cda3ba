package ais

import (
	"errors"
	"sort"
	"strings"

	"github.com/ngmaloney/signalk-terminal/internal/models"
)

const (
	// SelfPrefix marks identifiers using the own-vessel UUID scheme
	SelfPrefix = "urn:mrn:signalk:uuid:"
	// MMSIPrefix marks identifiers using the MMSI scheme
	MMSIPrefix = "urn:mrn:imo:mmsi:"

	// mmsiSegment is the index of the MMSI in a colon-delimited URN
	mmsiSegment = 4
)

var (
	// ErrNoSelfPosition is returned when no own-vessel entry has a position
	ErrNoSelfPosition = errors.New("own vessel position unknown")
	// ErrNoCandidates is returned when no other vessel has a position
	ErrNoCandidates = errors.New("no other vessels with a position")
)

// IsSelf reports whether id uses the own-vessel naming scheme
func IsSelf(id string) bool {
	return strings.HasPrefix(id, SelfPrefix)
}

// ParseMMSI extracts the MMSI segment from a vessel URN.
// Returns "" if the identifier has too few segments.
func ParseMMSI(id string) string {
	parts := strings.Split(id, ":")
	if len(parts) <= mmsiSegment {
		return ""
	}
	return parts[mmsiSegment]
}

// ClassKey returns the registry key holding AIS details for an MMSI
func ClassKey(mmsi string) string {
	return MMSIPrefix + mmsi
}

// SelfPosition returns the position of the first own-vessel entry that has one
func SelfPosition(registry models.Registry) (models.Position, bool) {
	for _, id := range sortedIDs(registry) {
		v := registry[id]
		if IsSelf(id) && v.HasPosition() {
			return *v.Position, true
		}
	}
	return models.Position{}, false
}

// Nearest finds the closest non-self vessel with a known position.
//
// Distances are rounded to 3 decimal places and compared numerically. Ties go to
// the lexicographically smallest identifier. When own position is unknown or no
// candidate exists, a zero NearestVessel is returned together with the reason.
func Nearest(registry models.Registry) (models.NearestVessel, error) {
	own, ok := SelfPosition(registry)
	if !ok {
		return models.NearestVessel{}, ErrNoSelfPosition
	}

	var (
		bestID   string
		bestDist float64
		found    bool
	)
	for _, id := range sortedIDs(registry) {
		v := registry[id]
		if IsSelf(id) || !v.HasPosition() {
			continue
		}
		d := Distance(own, *v.Position)
		if !found || d < bestDist {
			bestID, bestDist, found = id, d, true
		}
	}
	if !found {
		return models.NearestVessel{}, ErrNoCandidates
	}

	nearest := models.NearestVessel{
		MMSI:           ParseMMSI(bestID),
		DistanceMeters: bestDist,
	}
	if rec, ok := registry[ClassKey(nearest.MMSI)]; ok {
		nearest.VesselClass = rec.AISClass
	}

	return nearest, nil
}

func sortedIDs(registry models.Registry) []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
