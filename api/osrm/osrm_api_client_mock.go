package osrm

import (
	"math"

	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
)

// OSRMApiClientMock embeds mocked logic for the OSRM api client. It derives
// a deterministic route from the straight-line distance so local runs don't
// hit the public demo server.
type OSRMApiClientMock struct {
}

// NewOSRMApiClientMock creates a new instance of OSRMApiClientMock
func NewOSRMApiClientMock() *OSRMApiClientMock {
	return &OSRMApiClientMock{}
}

// GetRoute returns a synthetic route assuming ~111km per degree and 30 km/h
// average driving speed.
func (c *OSRMApiClientMock) GetRoute(startLng, startLat, endLng, endLat float64) (*models.RouteResult, error) {
	dLat := endLat - startLat
	dLng := endLng - startLng
	meters := math.Sqrt(dLat*dLat+dLng*dLng) * 111000.0
	seconds := meters / (30000.0 / 3600.0)

	return &models.RouteResult{
		DurationSeconds: seconds,
		DistanceMeters:  meters,
		DurationMinutes: int(math.Round(seconds / 60)),
		DistanceKm:      math.Round(meters/100) / 10,
	}, nil
}
