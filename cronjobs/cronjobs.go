package cronjobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"go-lifelink/session"
)

// Sessions idle past this are torn down so map instances don't pile up.
const maxSessionIdle = 30 * time.Minute

func InitCronJobs(manager *session.Manager) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Session reaper: run every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("\nCronJob: Session Reaper Running")
		reaped := manager.Reap(maxSessionIdle)
		if reaped > 0 {
			log.Printf("Session reaper closed %d idle sessions (%d remain)", reaped, manager.Count())
		}
	})
	if err != nil {
		log.Println("Error scheduling Session Reaper:", err)
	}

	c.Start()
}
