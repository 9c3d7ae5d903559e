package osrm

import (
	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
)

// OSRMAPI defines the interface for the routing provider. Coordinates are
// passed longitude-first, matching the OSRM wire format.
type OSRMAPI interface {
	GetRoute(startLng, startLat, endLng, endLat float64) (*models.RouteResult, error)
}
