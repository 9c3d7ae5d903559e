package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueRoutes is the set of venue endpoints the router wires up.
type VenueRoutes interface {
	GetVenues(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	GetVenueChart(w http.ResponseWriter, r *http.Request)
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetRecommendation(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// RouteRoutes is the routing batch endpoint.
type RouteRoutes interface {
	GetRoutes(w http.ResponseWriter, r *http.Request)
}

// ChatRoutes is the chat assistant endpoint.
type ChatRoutes interface {
	PostChat(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler VenueRoutes
	routeHandler RouteRoutes
	chatHandler  ChatRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler VenueRoutes,
	routeHandler RouteRoutes,
	chatHandler ChatRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler: venueHandler,
		routeHandler: routeHandler,
		chatHandler:  chatHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?category={tag}&sort={occupancy|distance|name}&lat=&lon=
	r.router.HandleFunc("/v1/venues", r.venueHandler.GetVenues).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")

	r.router.HandleFunc("/v1/venues/{id}/chart", r.venueHandler.GetVenueChart).Methods("GET")

	// expects ?travel_minutes={int}
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.GetVenue).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}
	r.router.HandleFunc("/v1/routes", r.routeHandler.GetRoutes).Methods("GET")

	r.router.HandleFunc("/v1/recommendation", r.venueHandler.GetRecommendation).Methods("GET")

	r.router.HandleFunc("/v1/chat", r.chatHandler.PostChat).Methods("POST")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}
