package occupancy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kreumat/nilbel-hackhaton-NAYS/config"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
)

// OperatingWindow is the half-open [OpenHour, CloseHour) hour range during
// which a venue is open on a weekday.
type OperatingWindow struct {
	OpenHour  int
	CloseHour int
}

// Snapshot is the derived occupancy state of a venue at the current hour.
type Snapshot struct {
	Time          string `json:"time"`
	OccupancyRate int    `json:"occupancy_rate"`
	VisitorCount  int    `json:"visitor_count"`
}

// CurrentHour returns the hour of day in the target timezone. The dashboard
// always reports UTC+3, regardless of where the server or caller sits.
func CurrentHour(clock Clock) int {
	utcHour := clock.Now().UTC().Hour()
	return (utcHour + config.TIMEZONE_OFFSET_HOURS) % 24
}

// currentWeekday returns the weekday name in the target timezone.
func currentWeekday(clock Clock) string {
	t := clock.Now().UTC().Add(config.TIMEZONE_OFFSET_HOURS * time.Hour)
	return t.Weekday().String()
}

// parseTimeToMinutes converts an "HH:MM" string to minutes since midnight.
// Unparseable components count as zero.
func parseTimeToMinutes(timeStr string) int {
	parts := strings.SplitN(timeStr, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours*60 + minutes
}

// isWithinHourWindow reports whether a log entry's time-of-day falls in the
// half-open ±30 minute window around the target hour mark. For hour 10 the
// window is [09:30, 10:30): 09:30 matches, 10:30 belongs to hour 11.
func isWithinHourWindow(logTime string, targetHour int) bool {
	logMinutes := parseTimeToMinutes(logTime)
	targetMinutes := targetHour * 60

	windowStart := targetMinutes - 30
	windowEnd := targetMinutes + 30

	return logMinutes >= windowStart && logMinutes < windowEnd
}

// parseHour extracts the hour component of an "HH:MM" string, returning
// fallback when it cannot be parsed.
func parseHour(timeStr string, fallback int) int {
	parts := strings.SplitN(timeStr, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return fallback
	}
	return h
}

// VenueOperatingWindow resolves a venue's weekday operating window. Missing
// or malformed hours fall back to 09:00-18:00; a close hour of 00 means
// midnight and is normalized to 24.
func VenueOperatingWindow(v *venue.Venue) OperatingWindow {
	w := OperatingWindow{
		OpenHour:  config.DEFAULT_OPEN_HOUR,
		CloseHour: config.DEFAULT_CLOSE_HOUR,
	}

	if v.Hours == nil {
		return w
	}

	hours := v.Hours.Weekday
	if hours == nil {
		hours = v.Hours.Weekend
	}
	if hours == nil {
		return w
	}

	w.OpenHour = parseHour(hours.Open, config.DEFAULT_OPEN_HOUR)
	w.CloseHour = parseHour(hours.Close, config.DEFAULT_CLOSE_HOUR)

	if w.CloseHour == 0 {
		w.CloseHour = 24
	}

	return w
}

// hourHasData reports whether any log entry falls in the given hour's window.
func hourHasData(logs []venue.OccupancyLog, hour int) bool {
	for _, l := range logs {
		if isWithinHourWindow(l.Time, hour) {
			return true
		}
	}
	return false
}

// AverageOccupancyForHour computes the mean occupancy rate for one hour of
// day across all recorded days, using the ±30 minute window matching above.
// When the window is empty: hours outside the operating window report 0,
// hours inside borrow the closest operating hour that has data (ascending
// scan, replaced only on strict improvement, so the lower hour wins ties).
// A venue with no data at all reports the default rate.
func AverageOccupancyForHour(v *venue.Venue, hour int) int {
	logs := v.OccupancyLogs
	if len(logs) == 0 {
		return config.DEFAULT_OCCUPANCY_RATE
	}

	sum := 0
	count := 0
	for _, l := range logs {
		if isWithinHourWindow(l.Time, hour) {
			sum += l.OccupancyRate
			count++
		}
	}

	if count == 0 {
		w := VenueOperatingWindow(v)

		if hour < w.OpenHour || hour >= w.CloseHour {
			return 0
		}

		closestHour := -1
		minDiff := 0
		for h := w.OpenHour; h < w.CloseHour; h++ {
			if !hourHasData(logs, h) {
				continue
			}
			diff := absInt(hour - h)
			if closestHour == -1 || diff < minDiff {
				closestHour = h
				minDiff = diff
			}
		}

		// No operating hour has data; entries exist only outside the
		// window (e.g. late-night logs). Treat as no usable history.
		if closestHour == -1 {
			return config.DEFAULT_OCCUPANCY_RATE
		}

		return AverageOccupancyForHour(v, closestHour)
	}

	return int(math.Round(float64(sum) / float64(count)))
}

// CurrentSnapshot derives the venue's occupancy at the current hour,
// including the visitor count implied by its capacity.
func CurrentSnapshot(v *venue.Venue, clock Clock) Snapshot {
	currentHour := CurrentHour(clock)
	averageRate := AverageOccupancyForHour(v, currentHour)
	visitorCount := int(math.Round(float64(averageRate) / 100.0 * float64(v.MaxCapacity)))

	return Snapshot{
		Time:          fmt.Sprintf("%02d:00", currentHour),
		OccupancyRate: averageRate,
		VisitorCount:  visitorCount,
	}
}

// HourlySeries computes one average per operating hour, suitable for the
// hourly chart. The result covers [OpenHour, CloseHour).
func HourlySeries(v *venue.Venue) []int {
	w := VenueOperatingWindow(v)

	series := make([]int, 0, w.CloseHour-w.OpenHour)
	for hour := w.OpenHour; hour < w.CloseHour; hour++ {
		series = append(series, AverageOccupancyForHour(v, hour))
	}
	return series
}

// IsVenueClosed reports whether the venue is closed right now: the current
// hour is outside the operating window, or today is one of its closed days.
func IsVenueClosed(v *venue.Venue, clock Clock) bool {
	currentHour := CurrentHour(clock)
	w := VenueOperatingWindow(v)

	if currentHour < w.OpenHour || currentHour >= w.CloseHour {
		return true
	}

	if len(v.ClosedDays) > 0 {
		today := currentWeekday(clock)
		for _, day := range v.ClosedDays {
			if day == today {
				return true
			}
		}
	}

	return false
}

// PredictOccupancy estimates the occupancy rate on arrival minutesFromNow
// minutes in the future. Arrival past closing reports 0; arrival before
// opening uses the opening hour's data.
func PredictOccupancy(v *venue.Venue, minutesFromNow int, clock Clock) int {
	currentHour := CurrentHour(clock)
	arrivalHour := currentHour + minutesFromNow/60

	w := VenueOperatingWindow(v)

	if arrivalHour >= w.CloseHour {
		return 0
	}

	targetHour := arrivalHour
	if targetHour < w.OpenHour {
		targetHour = w.OpenHour
	}

	return AverageOccupancyForHour(v, targetHour)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
