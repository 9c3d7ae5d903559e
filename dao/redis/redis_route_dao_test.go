package redis

import (
	"context"
	"testing"
	"time"

	"github.com/kreumat/nilbel-hackhaton-NAYS/db"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
)

func TestRedisRouteDAO_SetAndGetRoute(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisRouteDAO(mockClient, 10*time.Minute)

	route := &models.RouteResult{
		DurationSeconds: 605.2,
		DistanceMeters:  3460,
		DurationMinutes: 10,
		DistanceKm:      3.5,
	}

	if err := dao.SetRoute(40.2130, 29.0148, "001", route); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := dao.GetRoute(40.2130, 29.0148, "001")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil {
		t.Fatalf("Expected a cached route, got nil")
	}
	if got.DurationMinutes != 10 || got.DistanceKm != 3.5 {
		t.Errorf("Unexpected cached route: %+v", got)
	}
}

func TestRedisRouteDAO_GetRoute_MissReturnsNil(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisRouteDAO(mockClient, 10*time.Minute)

	got, err := dao.GetRoute(0, 0, "missing")
	if err != nil {
		t.Fatalf("Expected no error on cache miss, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil on cache miss, got %+v", got)
	}
}

func TestRedisRouteDAO_KeyIncludesOrigin(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisRouteDAO(mockClient, 10*time.Minute)

	route := &models.RouteResult{DurationMinutes: 10}
	if err := dao.SetRoute(40.2130, 29.0148, "001", route); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A different origin must not hit the same cache entry.
	got, err := dao.GetRoute(41.0000, 29.0148, "001")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for a different origin, got %+v", got)
	}
}
