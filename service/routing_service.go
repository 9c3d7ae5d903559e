package services

import (
	"log"
	"sync"

	"github.com/kreumat/nilbel-hackhaton-NAYS/api/osrm"
	redis "github.com/kreumat/nilbel-hackhaton-NAYS/dao/redis"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
)

// RoutingService resolves driving routes from a picked location to every
// venue, backed by the Redis route cache.
type RoutingService struct {
	osrmAPI  osrm.OSRMAPI
	routeDao *redis.RedisRouteDAO
}

// NewRoutingService constructs a new RoutingService with its dependencies.
func NewRoutingService(osrmAPI osrm.OSRMAPI, routeDao *redis.RedisRouteDAO) *RoutingService {
	return &RoutingService{
		osrmAPI:  osrmAPI,
		routeDao: routeDao,
	}
}

// GetRoutesToVenues issues one lookup per venue concurrently and waits for
// the whole batch. A failed lookup leaves a nil entry for that venue only;
// the batch itself never fails.
func (rs *RoutingService) GetRoutesToVenues(lat, lng float64, venues []venue.Venue) map[string]*models.RouteResult {
	results := make(map[string]*models.RouteResult, len(venues))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := range venues {
		wg.Add(1)
		go func(v venue.Venue) {
			defer wg.Done()
			route, err := rs.routeToVenue(lat, lng, v)
			if err != nil {
				log.Printf("[RoutingService] No route to venue %s (%s): %v", v.VenueID, v.VenueName, err)
				route = nil
			}
			mu.Lock()
			results[v.VenueID] = route
			mu.Unlock()
		}(venues[i])
	}

	wg.Wait()
	return results
}

// routeToVenue checks the cache first, then falls back to OSRM and caches
// the answer.
func (rs *RoutingService) routeToVenue(lat, lng float64, v venue.Venue) (*models.RouteResult, error) {
	if rs.routeDao != nil {
		if cached, err := rs.routeDao.GetRoute(lat, lng, v.VenueID); err == nil && cached != nil {
			return cached, nil
		}
	}

	route, err := rs.osrmAPI.GetRoute(lng, lat, v.Location.Lng, v.Location.Lat)
	if err != nil {
		return nil, err
	}

	if rs.routeDao != nil {
		if err := rs.routeDao.SetRoute(lat, lng, v.VenueID, route); err != nil {
			log.Printf("[RoutingService] Failed to cache route for venue %s: %v", v.VenueID, err)
		}
	}

	return route, nil
}
