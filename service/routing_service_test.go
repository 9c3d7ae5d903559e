package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	redis "github.com/kreumat/nilbel-hackhaton-NAYS/dao/redis"
	"github.com/kreumat/nilbel-hackhaton-NAYS/db"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
)

// failingOSRM fails for one venue's coordinates and succeeds otherwise.
type failingOSRM struct {
	failLng float64
	calls   int32
}

func (f *failingOSRM) GetRoute(startLng, startLat, endLng, endLat float64) (*models.RouteResult, error) {
	atomic.AddInt32(&f.calls, 1)
	if endLng == f.failLng {
		return nil, fmt.Errorf("no route found")
	}
	return &models.RouteResult{
		DurationSeconds: 600,
		DistanceMeters:  3000,
		DurationMinutes: 10,
		DistanceKm:      3.0,
	}, nil
}

func routingVenues() []venue.Venue {
	return []venue.Venue{
		{VenueID: "001", VenueName: "Kütüphane", Location: venue.Location{Lat: 40.23, Lng: 28.83}},
		{VenueID: "002", VenueName: "Kafe", Location: venue.Location{Lat: 40.21, Lng: 28.95}},
		{VenueID: "003", VenueName: "Lokanta", Location: venue.Location{Lat: 40.22, Lng: 28.85}},
	}
}

func TestRoutingService_GetRoutesToVenues_PartialFailure(t *testing.T) {
	osrmAPI := &failingOSRM{failLng: 28.95} // venue 002 fails
	routeDao := redis.NewRedisRouteDAO(db.NewMockRedisClient(context.Background()), 10*time.Minute)
	rs := NewRoutingService(osrmAPI, routeDao)

	routes := rs.GetRoutesToVenues(40.213, 29.015, routingVenues())

	if len(routes) != 3 {
		t.Fatalf("Expected an entry per venue, got %d", len(routes))
	}
	if routes["001"] == nil || routes["003"] == nil {
		t.Errorf("Expected routes for venues 001 and 003, got %+v", routes)
	}
	if routes["002"] != nil {
		t.Errorf("Expected nil route for failed venue 002, got %+v", routes["002"])
	}
	if routes["001"].DurationMinutes != 10 {
		t.Errorf("Expected 10 minutes, got %d", routes["001"].DurationMinutes)
	}
}

func TestRoutingService_GetRoutesToVenues_UsesCache(t *testing.T) {
	osrmAPI := &failingOSRM{failLng: -1}
	routeDao := redis.NewRedisRouteDAO(db.NewMockRedisClient(context.Background()), 10*time.Minute)
	rs := NewRoutingService(osrmAPI, routeDao)

	venues := routingVenues()

	first := rs.GetRoutesToVenues(40.213, 29.015, venues)
	callsAfterFirst := atomic.LoadInt32(&osrmAPI.calls)

	second := rs.GetRoutesToVenues(40.213, 29.015, venues)
	callsAfterSecond := atomic.LoadInt32(&osrmAPI.calls)

	if callsAfterFirst != 3 {
		t.Fatalf("Expected 3 OSRM calls on the first batch, got %d", callsAfterFirst)
	}
	if callsAfterSecond != callsAfterFirst {
		t.Errorf("Expected the second batch to be served from cache, got %d extra calls",
			callsAfterSecond-callsAfterFirst)
	}
	if len(first) != len(second) {
		t.Errorf("Expected identical batches, got %d and %d entries", len(first), len(second))
	}
}

func TestRoutingService_GetRoutesToVenues_EmptyVenueSet(t *testing.T) {
	rs := NewRoutingService(&failingOSRM{}, nil)

	routes := rs.GetRoutesToVenues(40.213, 29.015, nil)

	if len(routes) != 0 {
		t.Errorf("Expected empty result map, got %d entries", len(routes))
	}
}
