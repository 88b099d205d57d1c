package migration

import (
	"Food-Share-Backend/entities"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// Migrate creates the four collections. Tables reference each other only by
// id, with no foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"food listing", &entities.FoodListing{}},
		{"food request", &entities.FoodRequest{}},
		{"food donation", &entities.FoodDonation{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrating %s table: %w", m.name, err)
		}
	}

	slog.Info("database migration complete")
	return nil
}
