// Package main backfills account statuses for rows created before the
// status column existed. Users with an empty status become approved;
// vendors with an empty status become pending. Idempotent.
package main

import (
	"log"
	"os"

	"agrimart/internal/config"
	"agrimart/internal/models"
	"agrimart/internal/repositories"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	users := repositories.DB.Model(&models.User{}).
		Where("account_status IS NULL OR account_status = ''").
		Update("account_status", models.StatusApproved)
	if users.Error != nil {
		log.Printf("Failed to backfill user statuses: %v", users.Error)
		os.Exit(1)
	}
	log.Printf("Backfilled %d user accounts to %s", users.RowsAffected, models.StatusApproved)

	vendors := repositories.DB.Model(&models.Vendor{}).
		Where("status IS NULL OR status = ''").
		Update("status", models.StatusPending)
	if vendors.Error != nil {
		log.Printf("Failed to backfill vendor statuses: %v", vendors.Error)
		os.Exit(1)
	}
	log.Printf("Backfilled %d vendor profiles to %s", vendors.RowsAffected, models.StatusPending)

	log.Println("Status backfill complete")
}
