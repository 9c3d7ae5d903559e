package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
	"github.com/kreumat/nilbel-hackhaton-NAYS/occupancy"
)

// testClock has UTC+3 hour 10 on a Wednesday.
func testClock() occupancy.MockClock {
	return occupancy.MockClock{MockTime: time.Date(2025, 6, 4, 7, 0, 0, 0, time.UTC)}
}

func testVenues() []venue.Venue {
	hours := &venue.Hours{Weekday: &venue.HoursRange{Open: "09:00", Close: "18:00"}}
	return []venue.Venue{
		{
			VenueID: "001", VenueName: "Kütüphane", Category: "kutuphane",
			MaxCapacity: 100, Hours: hours,
			OccupancyLogs: []venue.OccupancyLog{{Time: "10:00", OccupancyRate: 30}},
		},
		{
			VenueID: "002", VenueName: "Kafe", Category: "kafe",
			MaxCapacity: 50, Hours: hours,
			OccupancyLogs: []venue.OccupancyLog{{Time: "10:00", OccupancyRate: 90}},
		},
		{
			VenueID: "003", VenueName: "Lokanta", Category: "lokanta",
			MaxCapacity: 80,
			Hours:       &venue.Hours{Weekday: &venue.HoursRange{Open: "11:00", Close: "15:00"}},
			OccupancyLogs: []venue.OccupancyLog{{Time: "12:00", OccupancyRate: 10}},
		},
	}
}

func TestVenueService_Summaries_FilterByCategory(t *testing.T) {
	vs := NewVenueService(testVenues(), testClock())

	summaries := vs.Summaries(ViewState{Category: "kafe", Sort: SortByOccupancy}, nil)

	if len(summaries) != 1 {
		t.Fatalf("Expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].Venue.VenueID != "002" {
		t.Errorf("Expected venue 002, got %s", summaries[0].Venue.VenueID)
	}
}

func TestVenueService_Summaries_SortByOccupancy(t *testing.T) {
	vs := NewVenueService(testVenues(), testClock())

	summaries := vs.Summaries(ViewState{Category: CategoryAll, Sort: SortByOccupancy}, nil)

	if len(summaries) != 3 {
		t.Fatalf("Expected 3 summaries, got %d", len(summaries))
	}
	for i := 1; i < len(summaries); i++ {
		if summaries[i-1].OccupancyRate > summaries[i].OccupancyRate {
			t.Errorf("Summaries not sorted ascending by occupancy: %d before %d",
				summaries[i-1].OccupancyRate, summaries[i].OccupancyRate)
		}
	}
}

func TestVenueService_Summaries_SortByDistancePutsMissingRoutesLast(t *testing.T) {
	vs := NewVenueService(testVenues(), testClock())
	routes := map[string]*models.RouteResult{
		"001": {DistanceKm: 5.0, DurationMinutes: 12},
		"002": nil, // lookup failed
		"003": {DistanceKm: 1.2, DurationMinutes: 4},
	}

	summaries := vs.Summaries(ViewState{Category: CategoryAll, Sort: SortByDistance}, routes)

	assert.Equal(t, "003", summaries[0].Venue.VenueID)
	assert.Equal(t, "001", summaries[1].Venue.VenueID)
	assert.Equal(t, "002", summaries[2].Venue.VenueID)
}

func TestVenueService_Summaries_ClosedVenueOverridesStatus(t *testing.T) {
	vs := NewVenueService(testVenues(), testClock())

	summaries := vs.Summaries(ViewState{Category: "lokanta"}, nil)

	// Venue 003 opens at 11:00; the clock says 10:00.
	if !summaries[0].Closed {
		t.Fatalf("Expected venue 003 to be closed at 10:00")
	}
	assert.Equal(t, "closed", summaries[0].StatusClass)
	assert.Equal(t, "Kapalı", summaries[0].StatusLabel)
}

func TestVenueService_Summaries_PredictionUsesRouteTravelTime(t *testing.T) {
	vs := NewVenueService(testVenues(), testClock())
	routes := map[string]*models.RouteResult{
		// 70 minutes of driving from hour 10 arrives during hour 11.
		"001": {DurationMinutes: 70},
	}

	summaries := vs.Summaries(ViewState{Category: "kutuphane"}, routes)

	// Venue 001 has data only at 10:00; hour 11 borrows it via the
	// closest-hour fallback, so the prediction still reads 30.
	assert.Equal(t, 30, summaries[0].PredictedRate)
}

func TestVenueService_VenueByID(t *testing.T) {
	vs := NewVenueService(testVenues(), testClock())

	v, err := vs.VenueByID("002")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, "Kafe", v.VenueName)

	if _, err := vs.VenueByID("999"); err == nil {
		t.Fatalf("Expected an error for unknown venue, got nil")
	}
}

func TestVenueService_Detail(t *testing.T) {
	vs := NewVenueService(testVenues(), testClock())

	detail, err := vs.Detail("001", 15)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, [2]int{9, 18}, detail.OperatingWindow)
	assert.Equal(t, 10, detail.CurrentHour)
	assert.Equal(t, 9, len(detail.HourlySeries))
	assert.Equal(t, 30, detail.Summary.OccupancyRate)
	assert.Equal(t, 30, detail.PredictedRate)
}

func TestVenueService_Recommendation_PicksLeastOccupiedOpenVenue(t *testing.T) {
	vs := NewVenueService(testVenues(), testClock())

	rec := vs.Recommendation(nil)

	// Venue 003 has the lowest rate but is closed at 10:00; venue 001 wins.
	assert.False(t, rec.AllClosed)
	assert.Equal(t, "001", rec.VenueID)
	assert.Equal(t, 30, rec.OccupancyRate)
	if !strings.Contains(rec.Message, "Kütüphane") {
		t.Errorf("Expected message to name the venue, got %q", rec.Message)
	}
}

func TestVenueService_Recommendation_AllClosed(t *testing.T) {
	// Clock at 05:00 UTC+3, before any venue opens.
	clock := occupancy.MockClock{MockTime: time.Date(2025, 6, 4, 2, 0, 0, 0, time.UTC)}
	vs := NewVenueService(testVenues(), clock)

	rec := vs.Recommendation(nil)

	assert.True(t, rec.AllClosed)
	if !strings.Contains(rec.Message, "kapalı") {
		t.Errorf("Expected all-closed message, got %q", rec.Message)
	}
}

func TestVenueService_VenueContextForAI(t *testing.T) {
	vs := NewVenueService(testVenues(), testClock())

	context := vs.VenueContextForAI()

	if !strings.Contains(context, "MEKAN DURUMU (Şu an saat 10:00)") {
		t.Errorf("Expected current hour header, got %q", context)
	}
	if !strings.Contains(context, "Kütüphane: AÇIK - %30 dolu") {
		t.Errorf("Expected open venue line, got %q", context)
	}
	if !strings.Contains(context, "Lokanta: KAPALI (Açılış: 11:00-15:00)") {
		t.Errorf("Expected closed venue line, got %q", context)
	}
	if !strings.Contains(context, "ÖNERİ") {
		t.Errorf("Expected recommendation line, got %q", context)
	}
}

func TestVenueService_VenueContextForAI_EmptySnapshot(t *testing.T) {
	vs := NewVenueService(nil, testClock())

	assert.Equal(t, "MEKAN VERİSİ YÜKLENİYOR...", vs.VenueContextForAI())
}
