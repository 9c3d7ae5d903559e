package services

import (
	"sort"
	"strings"

	"github.com/kreumat/nilbel-hackhaton-NAYS/config"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
	"github.com/kreumat/nilbel-hackhaton-NAYS/occupancy"
)

// Sort modes accepted by the venue listing.
const (
	SortByOccupancy = "occupancy"
	SortByDistance  = "distance"
	SortByName      = "name"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// noRouteDistanceKm sorts venues without a route after everything else.
const noRouteDistanceKm = 999

// ViewState carries the caller's filter, sort and picked location. It
// replaces what the dashboard kept as page-level mutable globals: the same
// state snapshot always renders the same listing.
type ViewState struct {
	Category string
	Sort     string
	Origin   *venue.Location
}

// VenueSummary is one render-ready venue card.
type VenueSummary struct {
	Venue         venue.Venue         `json:"venue"`
	OccupancyRate int                 `json:"occupancy_rate"`
	VisitorCount  int                 `json:"visitor_count"`
	Closed        bool                `json:"closed"`
	StatusClass   string              `json:"status_class"`
	StatusLabel   string              `json:"status_label"`
	PredictedRate int                 `json:"predicted_occupancy_rate"`
	Route         *models.RouteResult `json:"route"`
}

// StatusClass maps an occupancy percentage onto the traffic-light band.
func StatusClass(percentage int) string {
	if percentage < 50 {
		return "green"
	}
	if percentage < 80 {
		return "yellow"
	}
	return "red"
}

// StatusLabel is the Turkish display label for the band.
func StatusLabel(percentage int) string {
	if percentage < 50 {
		return "Rahat"
	}
	if percentage < 80 {
		return "Yoğunlaşıyor"
	}
	return "Çok Yoğun"
}

// BuildSummaries derives the render state for every venue: current
// snapshot, closed determination, status band and the arrival prediction
// based on the route's travel time (or the default when no route exists).
func BuildSummaries(venues []venue.Venue, routes map[string]*models.RouteResult, clock occupancy.Clock) []VenueSummary {
	summaries := make([]VenueSummary, 0, len(venues))
	for i := range venues {
		v := venues[i]
		snapshot := occupancy.CurrentSnapshot(&v, clock)
		closed := occupancy.IsVenueClosed(&v, clock)

		var route *models.RouteResult
		if routes != nil {
			route = routes[v.VenueID]
		}

		travelMinutes := config.DEFAULT_TRAVEL_TIME_MINUTES
		if route != nil && route.DurationMinutes > 0 {
			travelMinutes = route.DurationMinutes
		}

		statusClass := StatusClass(snapshot.OccupancyRate)
		statusLabel := StatusLabel(snapshot.OccupancyRate)
		if closed {
			statusClass = "closed"
			statusLabel = "Kapalı"
		}

		summaries = append(summaries, VenueSummary{
			Venue:         v,
			OccupancyRate: snapshot.OccupancyRate,
			VisitorCount:  snapshot.VisitorCount,
			Closed:        closed,
			StatusClass:   statusClass,
			StatusLabel:   statusLabel,
			PredictedRate: occupancy.PredictOccupancy(&v, travelMinutes, clock),
			Route:         route,
		})
	}
	return summaries
}

// FilterSummaries keeps only the venues in the given category.
func FilterSummaries(summaries []VenueSummary, category string) []VenueSummary {
	if category == "" || category == CategoryAll {
		return summaries
	}
	filtered := make([]VenueSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.Venue.Category == category {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// SortSummaries returns a sorted copy; the input is left untouched.
// Venues without a route sort after everything else in distance mode.
func SortSummaries(summaries []VenueSummary, sortMode string) []VenueSummary {
	sorted := make([]VenueSummary, len(summaries))
	copy(sorted, summaries)

	switch sortMode {
	case SortByDistance:
		sort.SliceStable(sorted, func(i, j int) bool {
			return summaryDistanceKm(sorted[i]) < summaryDistanceKm(sorted[j])
		})
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.Compare(sorted[i].Venue.VenueName, sorted[j].Venue.VenueName) < 0
		})
	default: // SortByOccupancy
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].OccupancyRate < sorted[j].OccupancyRate
		})
	}
	return sorted
}

func summaryDistanceKm(s VenueSummary) float64 {
	if s.Route == nil {
		return noRouteDistanceKm
	}
	return s.Route.DistanceKm
}

// Recommendation names the least occupied currently-open venue.
type Recommendation struct {
	VenueID       string `json:"venue_id,omitempty"`
	VenueName     string `json:"venue_name,omitempty"`
	OccupancyRate int    `json:"occupancy_rate"`
	AllClosed     bool   `json:"all_closed"`
	Message       string `json:"message"`
}
