package services

import (
	"fmt"
	"strings"

	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
	"github.com/kreumat/nilbel-hackhaton-NAYS/occupancy"
)

// VenueService exposes listing, detail and recommendation views over an
// immutable venue snapshot loaded once at startup.
type VenueService struct {
	venues []venue.Venue
	clock  occupancy.Clock
}

// NewVenueService constructs a new VenueService over the loaded venue set.
func NewVenueService(venues []venue.Venue, clock occupancy.Clock) *VenueService {
	return &VenueService{
		venues: venues,
		clock:  clock,
	}
}

// Venues returns the loaded snapshot.
func (vs *VenueService) Venues() []venue.Venue {
	return vs.venues
}

// VenueByID looks a venue up by its identifier.
func (vs *VenueService) VenueByID(venueID string) (*venue.Venue, error) {
	for i := range vs.venues {
		if vs.venues[i].VenueID == venueID {
			return &vs.venues[i], nil
		}
	}
	return nil, fmt.Errorf("venue not found: %s", venueID)
}

// Summaries renders the venue listing for the given view state, joined with
// the caller's route results when present.
func (vs *VenueService) Summaries(state ViewState, routes map[string]*models.RouteResult) []VenueSummary {
	summaries := BuildSummaries(vs.venues, routes, vs.clock)
	summaries = FilterSummaries(summaries, state.Category)
	return SortSummaries(summaries, state.Sort)
}

// VenueDetail is the modal view: current snapshot, operating window, the
// full hourly series and the arrival prediction.
type VenueDetail struct {
	Summary         VenueSummary       `json:"summary"`
	OperatingWindow [2]int             `json:"operating_window"`
	CurrentHour     int                `json:"current_hour"`
	HourlySeries    []int              `json:"hourly_series"`
	TravelMinutes   int                `json:"travel_minutes"`
	PredictedRate   int                `json:"predicted_occupancy_rate"`
}

// Detail renders the detail view for one venue, predicting occupancy on
// arrival travelMinutes from now.
func (vs *VenueService) Detail(venueID string, travelMinutes int) (*VenueDetail, error) {
	v, err := vs.VenueByID(venueID)
	if err != nil {
		return nil, err
	}

	summaries := BuildSummaries([]venue.Venue{*v}, nil, vs.clock)
	w := occupancy.VenueOperatingWindow(v)

	return &VenueDetail{
		Summary:         summaries[0],
		OperatingWindow: [2]int{w.OpenHour, w.CloseHour},
		CurrentHour:     occupancy.CurrentHour(vs.clock),
		HourlySeries:    occupancy.HourlySeries(v),
		TravelMinutes:   travelMinutes,
		PredictedRate:   occupancy.PredictOccupancy(v, travelMinutes, vs.clock),
	}, nil
}

// Recommendation finds the least occupied open venue; ties keep the first
// venue in snapshot order.
func (vs *VenueService) Recommendation(routes map[string]*models.RouteResult) Recommendation {
	summaries := BuildSummaries(vs.venues, routes, vs.clock)

	var best *VenueSummary
	for i := range summaries {
		if summaries[i].Closed {
			continue
		}
		if best == nil || summaries[i].OccupancyRate < best.OccupancyRate {
			best = &summaries[i]
		}
	}

	if best == nil {
		return Recommendation{
			AllClosed: true,
			Message:   "Şu an tüm mekanlar kapalı. Açılış saatlerini kontrol edin.",
		}
	}

	travelText := "kısa sürede"
	if best.Route != nil {
		travelText = fmt.Sprintf("%d dakikada", best.Route.DurationMinutes)
	}

	return Recommendation{
		VenueID:       best.Venue.VenueID,
		VenueName:     best.Venue.VenueName,
		OccupancyRate: best.OccupancyRate,
		Message: fmt.Sprintf("Şu an en az yoğun mekan: %s (%%%d doluluk). Oraya %s ulaşabilirsiniz.",
			best.Venue.VenueName, best.OccupancyRate, travelText),
	}
}

// VenueContextForAI renders the per-venue status block injected into the
// chat assistant's system prompt.
func (vs *VenueService) VenueContextForAI() string {
	if len(vs.venues) == 0 {
		return "MEKAN VERİSİ YÜKLENİYOR..."
	}

	currentHour := occupancy.CurrentHour(vs.clock)

	var sb strings.Builder
	fmt.Fprintf(&sb, "MEKAN DURUMU (Şu an saat %02d:00):\n", currentHour)

	for i := range vs.venues {
		v := &vs.venues[i]
		w := occupancy.VenueOperatingWindow(v)
		hoursStr := formatOperatingWindow(w)

		if occupancy.IsVenueClosed(v, vs.clock) {
			fmt.Fprintf(&sb, "• %s: KAPALI (Açılış: %s)\n", v.VenueName, hoursStr)
			continue
		}

		rate := occupancy.CurrentSnapshot(v, vs.clock).OccupancyRate
		fmt.Fprintf(&sb, "• %s: AÇIK - %%%d dolu (%s) - Saatler: %s\n",
			v.VenueName, rate, strings.ToLower(StatusLabel(rate)), hoursStr)
	}

	rec := vs.Recommendation(nil)
	if rec.AllClosed {
		sb.WriteString("\nNOT: Şu an tüm mekanlar kapalı.")
	} else {
		fmt.Fprintf(&sb, "\nÖNERİ: En az yoğun açık mekan \"%s\" (%%%d)", rec.VenueName, rec.OccupancyRate)
	}

	return sb.String()
}

func formatOperatingWindow(w occupancy.OperatingWindow) string {
	closeStr := fmt.Sprintf("%02d:00", w.CloseHour)
	if w.CloseHour == 24 {
		closeStr = "00:00"
	}
	return fmt.Sprintf("%02d:00-%s", w.OpenHour, closeStr)
}
