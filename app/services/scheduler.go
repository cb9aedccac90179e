package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Nightly housekeeping at 9:00 PM
			if now.Hour() == 21 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [21:00]...")

				if err := SweepStaleCredentials(db); err != nil {
					log.Printf("Error sweeping stale credentials: %v", err)
				}
			}
		}
	}()
}
