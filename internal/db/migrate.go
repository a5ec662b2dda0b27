package db

import (
	"moneystats/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Categories seeded on migration. Wallet categories are reference data:
// the services only ever read them.
var defaultCategories = []string{
	"Cash",
	"Bank Account",
	"Credit Card",
	"Investment",
	"Crypto",
}

// Migrate performs automatic migration for the database schema and seeds
// the wallet categories.
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Wallet{}, &domain.Statement{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	for _, name := range defaultCategories {
		category := domain.Category{Name: name}
		// FirstOrCreate keeps the seed idempotent across runs
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			logrus.Fatalf("category seed failed: %v", err)
		}
	}
	logrus.Info("Migration completed.")
}
