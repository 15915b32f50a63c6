// Command initadmin seeds the admin account so the panel is reachable on a
// fresh deployment. Safe to run repeatedly.
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/sekolahku/internal/config"
	"github.com/sekolahku/internal/db"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	fmt.Printf("admin account ready: %s\n", cfg.AdminEmail)
}
