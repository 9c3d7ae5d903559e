package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kreumat/nilbel-hackhaton-NAYS/config"
	redis "github.com/kreumat/nilbel-hackhaton-NAYS/dao/redis"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models"
	"github.com/kreumat/nilbel-hackhaton-NAYS/occupancy"
	services "github.com/kreumat/nilbel-hackhaton-NAYS/service"
	"github.com/kreumat/nilbel-hackhaton-NAYS/util"
)

const (
	LAT_QUERY_ARG            = "lat"
	LON_QUERY_ARG            = "lon"
	RADIUS_QUERY_ARG         = "radius"
	CATEGORY_QUERY_ARG       = "category"
	SORT_QUERY_ARG           = "sort"
	TRAVEL_MINUTES_QUERY_ARG = "travel_minutes"
)

type VenueHandler struct {
	venueService   *services.VenueService
	routingService *services.RoutingService
	venueDao       *redis.RedisVenueDAO
	clock          occupancy.Clock
}

func NewVenueHandler(
	venueService *services.VenueService,
	routingService *services.RoutingService,
	venueDao *redis.RedisVenueDAO,
	clock occupancy.Clock,
) *VenueHandler {
	return &VenueHandler{
		venueService:   venueService,
		routingService: routingService,
		venueDao:       venueDao,
		clock:          clock,
	}
}

// GetVenues handles GET /v1/venues.
// Accepts ?category=...&sort=...&lat=...&lon=...; a picked location joins
// the listing with route results.
func (h *VenueHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	state := services.ViewState{
		Category: vals.Get(CATEGORY_QUERY_ARG),
		Sort:     vals.Get(SORT_QUERY_ARG),
	}
	if state.Category == "" {
		state.Category = services.CategoryAll
	}
	if state.Sort == "" {
		state.Sort = services.SortByOccupancy
	}

	routes := h.resolveRoutes(vals)

	summaries := h.venueService.Summaries(state, routes)
	writeJSON(w, summaries)
}

// GetVenue handles GET /v1/venues/{id}.
// ?travel_minutes=N feeds the arrival prediction; defaults when absent.
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["id"]

	travelMinutes := config.DEFAULT_TRAVEL_TIME_MINUTES
	if s := r.URL.Query().Get(TRAVEL_MINUTES_QUERY_ARG); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			travelMinutes = parsed
		}
	}

	detail, err := h.venueService.Detail(venueID, travelMinutes)
	if err != nil {
		http.Error(w, "Venue not found", http.StatusNotFound)
		return
	}

	writeJSON(w, detail)
}

// GetVenueChart handles GET /v1/venues/{id}/chart, rendering the hourly
// occupancy bar chart as HTML.
func (h *VenueHandler) GetVenueChart(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["id"]

	v, err := h.venueService.VenueByID(venueID)
	if err != nil {
		http.Error(w, "Venue not found", http.StatusNotFound)
		return
	}

	series := occupancy.HourlySeries(v)
	window := occupancy.VenueOperatingWindow(v)
	currentHour := occupancy.CurrentHour(h.clock)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotHourlyOccupancy(v, series, window.OpenHour, currentHour, w); err != nil {
		log.Println("Error rendering hourly chart:", err)
	}
}

// GetVenuesNearby handles GET /v1/venues/nearby.
// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err := parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	venues, err := h.venueDao.GetNearbyVenues(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, venues)
}

// GetRecommendation handles GET /v1/recommendation.
func (h *VenueHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	routes := h.resolveRoutes(r.URL.Query())
	writeJSON(w, h.venueService.Recommendation(routes))
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

// resolveRoutes fetches the route batch when the caller supplied a picked
// location; otherwise returns nil and the listing renders without routes.
func (h *VenueHandler) resolveRoutes(vals url.Values) map[string]*models.RouteResult {
	lat, latErr := parseArgFloat64(vals, LAT_QUERY_ARG)
	lon, lonErr := parseArgFloat64(vals, LON_QUERY_ARG)
	if latErr != nil || lonErr != nil {
		return nil
	}
	return h.routingService.GetRoutesToVenues(lat, lon, h.venueService.Venues())
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
