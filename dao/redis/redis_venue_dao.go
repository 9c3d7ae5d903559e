package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kreumat/nilbel-hackhaton-NAYS/db"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
)

const VENUES_GEO_KEY_V1 = "nays_venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "nays_venues_geo_place_v1:%s"

// RedisVenueDAO handles venue operations using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	ctx := dao.client.GetContext()
	venueKey := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, v.VenueID)
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey, v.Location.Lat, v.Location.Lng, v)
}

// GetNearbyVenues retrieves venues within a given radius (in km).
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon float64, radius float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %v", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %v", err)
		}
	}
	return venues, nil
}

// ListAllVenueIDs returns all venue IDs present in the geo index.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]string, error) {
	pattern := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
