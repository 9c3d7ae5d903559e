package main

import (
	"fmt"
	"time"

	"github.com/kreumat/nilbel-hackhaton-NAYS/config"
	"github.com/kreumat/nilbel-hackhaton-NAYS/di"
)

func main() {
	container := di.NewContainer("prod")

	fmt.Println("seeding venues!")
	container.VenuesRefresherService.RefreshVenuesData()
	fmt.Println("starting periodic job!")
	container.VenuesRefresherService.StartPeriodicJob(config.VENUES_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.NaysHttpServer.Start()
}
