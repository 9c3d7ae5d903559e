package venue

import "fmt"

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HoursRange is an open/close pair in "HH:MM" wall-clock format.
type HoursRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Hours groups the operating windows by day type.
type Hours struct {
	Weekday *HoursRange `json:"weekday,omitempty"`
	Weekend *HoursRange `json:"weekend,omitempty"`
}

// OccupancyLog is one historical visitor-count observation. Only the
// time-of-day is used by the estimator; the date is kept for reference.
type OccupancyLog struct {
	Date          string `json:"date,omitempty"`
	Time          string `json:"time"`
	OccupancyRate int    `json:"occupancy_rate"`
}

// Venue represents a municipal venue with its occupancy history.
type Venue struct {
	VenueID       string         `json:"venue_id"`
	VenueName     string         `json:"venue_name"`
	VenueType     string         `json:"venue_type"`
	MaxCapacity   int            `json:"max_capacity"`
	Location      Location       `json:"location"`
	Hours         *Hours         `json:"hours,omitempty"`
	ClosedDays    []string       `json:"closed_days,omitempty"`
	OccupancyLogs []OccupancyLog `json:"occupancy_logs"`

	// Presentation fields resolved at load time, not present in data.json:
	Category      string `json:"category,omitempty"`
	CategoryLabel string `json:"category_label,omitempty"`
	VenueAddress  string `json:"venue_address,omitempty"`
	Description   string `json:"description,omitempty"`
	Image         string `json:"image,omitempty"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, type=%s, capacity=%d, lat=%f, lng=%f)",
		v.VenueID, v.VenueName, v.VenueType, v.MaxCapacity, v.Location.Lat, v.Location.Lng)
}
