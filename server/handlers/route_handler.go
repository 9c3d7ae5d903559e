package handlers

import (
	"net/http"

	services "github.com/kreumat/nilbel-hackhaton-NAYS/service"
)

type RouteHandler struct {
	routingService *services.RoutingService
	venueService   *services.VenueService
}

func NewRouteHandler(routingService *services.RoutingService, venueService *services.VenueService) *RouteHandler {
	return &RouteHandler{
		routingService: routingService,
		venueService:   venueService,
	}
}

// GetRoutes handles GET /v1/routes.
// expects ?lat={latitude(float)}&lon={longitude(float)}; responds with a map
// of venue ID to route result, null for venues without a viable route.
func (h *RouteHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
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

	routes := h.routingService.GetRoutesToVenues(lat, lon, h.venueService.Venues())
	writeJSON(w, routes)
}
