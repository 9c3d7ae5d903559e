package models

// RouteResult holds one driving route from the user's location to a venue.
// DurationMinutes and DistanceKm are the display-ready values derived from
// the raw OSRM figures.
type RouteResult struct {
	DurationSeconds float64 `json:"duration_seconds"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceKm      float64 `json:"distance_km"`
}
