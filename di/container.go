package di

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/kreumat/nilbel-hackhaton-NAYS/api"
	"github.com/kreumat/nilbel-hackhaton-NAYS/api/openrouter"
	"github.com/kreumat/nilbel-hackhaton-NAYS/api/osrm"
	"github.com/kreumat/nilbel-hackhaton-NAYS/config"
	redis "github.com/kreumat/nilbel-hackhaton-NAYS/dao/redis"
	"github.com/kreumat/nilbel-hackhaton-NAYS/db"
	"github.com/kreumat/nilbel-hackhaton-NAYS/models/venue"
	"github.com/kreumat/nilbel-hackhaton-NAYS/occupancy"
	"github.com/kreumat/nilbel-hackhaton-NAYS/server"
	"github.com/kreumat/nilbel-hackhaton-NAYS/server/handlers"
	services "github.com/kreumat/nilbel-hackhaton-NAYS/service"
	"github.com/kreumat/nilbel-hackhaton-NAYS/util"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisVenueDao          *redis.RedisVenueDAO
	RedisRouteDao          *redis.RedisRouteDAO
	VenueService           *services.VenueService
	RoutingService         *services.RoutingService
	ChatService            *services.ChatService
	OSRMAPI                osrm.OSRMAPI
	ChatCompletionAPI      openrouter.ChatCompletionAPI
	VenueHandler           *handlers.VenueHandler
	RouteHandler           *handlers.RouteHandler
	ChatHandler            *handlers.ChatHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	NaysHttpServer         *server.NaysHttpServer
	VenuesRefresherService *services.VenuesRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})

		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis DAOs
	redisVenueDao := redis.NewRedisVenueDAO(redisClient)
	redisRouteDao := redis.NewRedisRouteDAO(redisClient, config.ROUTE_CACHE_TTL_MINUTES*time.Minute)

	// Initialize OSRM API - mock off-prod
	var osrmApiClient osrm.OSRMAPI
	if env != "prod" {
		osrmApiClient = osrm.NewOSRMApiClientMock()
		log.Printf("Using mock osrm api")
	} else {
		log.Printf("Using prod osrm api")
		osrmApiClient = osrm.NewOSRMApiClient(api.NewHTTPClient(config.OSRM_ENDPOINT_BASE))
	}

	// Initialize OpenRouter API - mock off-prod
	var chatApiClient openrouter.ChatCompletionAPI
	if env != "prod" {
		chatApiClient = openrouter.NewOpenRouterApiClientMock()
		log.Printf("Using mock openrouter api")
	} else {
		log.Printf("Using prod openrouter api")
		chatApiClient = openrouter.NewOpenRouterApiClient(api.NewHTTPClient(config.OPENROUTER_ENDPOINT_BASE))
		chatApiClient.SetCredentials(os.Getenv(config.OPENROUTER_API_KEY_ENV))
	}

	clock := occupancy.RealClock{}

	// Load the venue snapshot. A broken data file degrades to an empty
	// dashboard instead of taking the server down.
	loadVenues := func() ([]venue.Venue, error) {
		return util.ReadVenuesFromJSON(config.GetResourcePath(config.VENUE_DATA_RESOURCE))
	}
	venues, err := loadVenues()
	if err != nil {
		log.Printf("Failed to load venue data: %v", err)
		venues = []venue.Venue{}
	}

	// Initialize service layer
	venueService := services.NewVenueService(venues, clock)
	routingService := services.NewRoutingService(osrmApiClient, redisRouteDao)
	chatService := services.NewChatService(chatApiClient, venueService)

	// Initialize handlers
	venueHandler := handlers.NewVenueHandler(venueService, routingService, redisVenueDao, clock)
	routeHandler := handlers.NewRouteHandler(routingService, venueService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(venueHandler, routeHandler, chatHandler, muxRouter)

	// initialize nays server
	naysHttpServer := server.NewNaysHttpServer(router, muxRouter)

	venuesRefresherService := services.NewVenuesRefresherService(redisVenueDao, loadVenues)

	return &Container{
		RedisClient:            redisClient,
		RedisVenueDao:          redisVenueDao,
		RedisRouteDao:          redisRouteDao,
		VenueService:           venueService,
		RoutingService:         routingService,
		ChatService:            chatService,
		OSRMAPI:                osrmApiClient,
		ChatCompletionAPI:      chatApiClient,
		VenueHandler:           venueHandler,
		RouteHandler:           routeHandler,
		ChatHandler:            chatHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		NaysHttpServer:         naysHttpServer,
		VenuesRefresherService: venuesRefresherService,
	}
}
