package main

import (
	"moneystats/internal/config" // Custom package for configuration
	"moneystats/internal/db"     // Custom package for database migration
)

// Main function to run database migration and category seeding
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run migration
}
