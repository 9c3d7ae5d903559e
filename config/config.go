package config

import (
	"os"
	"path/filepath"
)

// Timezone config
// The dashboard always reports Türkiye time (UTC+3), not the caller's locale.
const TIMEZONE_OFFSET_HOURS = 3

// Occupancy defaults
const DEFAULT_OCCUPANCY_RATE = 50
const DEFAULT_OPEN_HOUR = 9
const DEFAULT_CLOSE_HOUR = 18
const DEFAULT_TRAVEL_TIME_MINUTES = 15

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// OSRM public demo API
const OSRM_ENDPOINT_BASE = "https://router.project-osrm.org"
const ROUTE_CACHE_TTL_MINUTES = 10

// OpenRouter chat completion API
const OPENROUTER_ENDPOINT_BASE = "https://openrouter.ai/api/v1"
const OPENROUTER_MODEL = "google/gemini-2.0-flash-001"
const OPENROUTER_API_KEY_ENV = "OPENROUTER_API_KEY"
const OPENROUTER_SITE_URL = "https://nilufer.bel.tr"
const OPENROUTER_SITE_NAME = "Nilüfer Belediyesi NAYS"

// Venues Refresher config
const VENUES_REFRESHER_SCHEDULE_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUE_DATA_RESOURCE = "data.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
