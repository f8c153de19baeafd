package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// Models lists every table the API owns, parents before children
func Models() []interface{} {
	return []interface{}{
		&models.Restaurant{},
		&models.Pizza{},
		&models.RestaurantPizza{},
	}
}

// Migrate creates the tables that do not exist yet. Existing tables are left alone.
func Migrate(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, model := range Models() {
		if migrator.HasTable(model) {
			continue
		}
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
		log.WithField("model", fmt.Sprintf("%T", model)).Debug("Table created")
	}
	return nil
}
