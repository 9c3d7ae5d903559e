package services

import (
	"log"
	"time"

	redis "github.com/kreumat/nilbel-hackhaton-NAYS/dao/redis"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
)

// VenueLoader reads the venue records from their source of truth.
type VenueLoader func() ([]venue.Venue, error)

// VenuesRefresherService periodically re-reads the venue data file and
// re-seeds the Redis geo index used by the nearby lookup.
type VenuesRefresherService struct {
	venueDao   *redis.RedisVenueDAO
	loadVenues VenueLoader
}

// NewVenuesRefresherService constructs a new Refresher with dependencies.
func NewVenuesRefresherService(venueDao *redis.RedisVenueDAO, loadVenues VenueLoader) *VenuesRefresherService {
	return &VenuesRefresherService{
		venueDao:   venueDao,
		loadVenues: loadVenues,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (vr *VenuesRefresherService) StartPeriodicJob(interval time.Duration) {
	go vr.startPeriodicJob(interval)
}

func (vr *VenuesRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[VenuesRefresherService] Running periodic venues refresher job.")
		if err := vr.RefreshVenuesData(); err != nil {
			log.Printf("[VenuesRefresherService] RefreshVenuesData returned error: %v", err)
		} else {
			log.Println("[VenuesRefresherService] RefreshVenuesData completed successfully.")
		}
	}
}

// RefreshVenuesData re-reads the data file and upserts every venue into the
// geo index. Individual upsert failures are logged and skipped.
func (vr *VenuesRefresherService) RefreshVenuesData() error {
	venues, err := vr.loadVenues()
	if err != nil {
		return err
	}

	log.Printf("[VenuesRefresherService] Seeding %d venues into the geo index", len(venues))
	for _, v := range venues {
		if err := vr.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[VenuesRefresherService] Upsert failed for %s: %v", v.VenueID, err)
		}
	}
	return nil
}
