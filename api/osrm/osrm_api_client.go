package osrm

import (
	"fmt"
	"math"

	"github.com/kreumat/nilbel-hackhaton-NAYS/api"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
)

// routeResponse mirrors the OSRM /route/v1 payload, limited to the fields
// the dashboard uses.
type routeResponse struct {
	Code   string  `json:"code"`
	Routes []route `json:"routes"`
}

type route struct {
	Duration float64 `json:"duration"` // seconds
	Distance float64 `json:"distance"` // meters
}

// OSRMApiClient embeds the common HTTPClient
type OSRMApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewOSRMApiClient creates a new instance of OSRMApiClient
func NewOSRMApiClient(httpClient *api.HTTPClient) *OSRMApiClient {
	return &OSRMApiClient{
		HTTPClient: httpClient,
	}
}

// GetRoute fetches the driving route between two coordinates and derives the
// display values: whole minutes and kilometers at one decimal place.
func (c *OSRMApiClient) GetRoute(startLng, startLat, endLng, endLat float64) (*models.RouteResult, error) {
	endpoint := fmt.Sprintf("/route/v1/driving/%f,%f;%f,%f?overview=false",
		startLng, startLat, endLng, endLat)

	var response routeResponse
	if err := c.Request("GET", endpoint, nil, nil, &response); err != nil {
		return nil, err
	}

	if response.Code != "Ok" || len(response.Routes) == 0 {
		return nil, fmt.Errorf("no route found (code=%s)", response.Code)
	}

	r := response.Routes[0]
	return &models.RouteResult{
		DurationSeconds: r.Duration,
		DistanceMeters:  r.Distance,
		DurationMinutes: int(math.Round(r.Duration / 60)),
		DistanceKm:      math.Round(r.Distance/100) / 10,
	}, nil
}
