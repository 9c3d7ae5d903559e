package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kreumat/nilbel-hackhaton-NAYS/db"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
)

// ROUTE_CACHE_KEY_FORMAT keys a cached route by origin coordinate (4 decimal
// places, roughly 11m of precision) and destination venue.
const ROUTE_CACHE_KEY_FORMAT = "nays_route_v1:%.4f:%.4f:%s"

// RedisRouteDAO caches OSRM route results so repeated lookups from the same
// picked location don't hammer the public routing API.
type RedisRouteDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisRouteDAO initializes a RedisRouteDAO with the Redis client.
func NewRedisRouteDAO(client db.RedisClient, ttl time.Duration) *RedisRouteDAO {
	return &RedisRouteDAO{client: client, ttl: ttl}
}

// SetRoute caches the route from an origin to a venue.
func (dao *RedisRouteDAO) SetRoute(lat, lng float64, venueID string, route *models.RouteResult) error {
	key := fmt.Sprintf(ROUTE_CACHE_KEY_FORMAT, lat, lng, venueID)
	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to marshal route for venue %s: %w", venueID, err)
	}
	if err := dao.client.SetWithTTL(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set route in redis: %w", err)
	}
	return nil
}

// GetRoute retrieves a cached route, or nil on a cache miss.
func (dao *RedisRouteDAO) GetRoute(lat, lng float64, venueID string) (*models.RouteResult, error) {
	key := fmt.Sprintf(ROUTE_CACHE_KEY_FORMAT, lat, lng, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, nil // cache miss
	}
	var route models.RouteResult
	if err := json.Unmarshal([]byte(str), &route); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached route JSON: %w", err)
	}
	return &route, nil
}
