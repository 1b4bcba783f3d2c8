// Package main seeds the administrator account. Safe to run on every
// deploy: an existing admin with the configured email is left alone.
package main

import (
	"log"
	"os"

	"agrimart/internal/config"
	"agrimart/internal/repositories"
	"agrimart/internal/services/admin"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminName := config.GetEnv("ADMIN_NAME", "Administrator")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer closeConnections()

	userRepo := repositories.NewUserRepository(repositories.DB, repositories.Cache)

	user, err := admin.EnsureAdmin(userRepo, adminEmail, adminPassword, adminName)
	if err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	log.Printf("Admin account ready: %s (id=%d)", user.Email, user.ID)
}

func closeConnections() {
	if repositories.DB != nil {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}
	}
	if err := repositories.Cache.Close(); err != nil {
		log.Printf("Failed to close cache connection: %v", err)
	}
}
