package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
)

// SweepStaleCredentials logs how many tokens expired unused and how
// many PINs are inert. Expiry stays check-on-read, so the sweep only
// reports; it never transitions state.
func SweepStaleCredentials(db *sql.DB) error {
	staleTokens, inertPins, err := database.CountStaleCredentials(db, time.Now())
	if err != nil {
		return err
	}
	log.Printf("Credential sweep: %d tokens expired unused, %d PINs inert", staleTokens, inertPins)
	return nil
}
