package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// IsEmpty reports whether no restaurant and no pizza has been stored yet
func IsEmpty(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, err
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, err
	}
	return restaurants == 0 && pizzas == 0, nil
}

// Seed inserts sample restaurants, pizzas and prices in a single transaction
func Seed(db *gorm.DB) error {
	log.Info("Seeding database with initial data")

	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "123 Main St"},
		{Name: "Sanjay's Pizza", Address: "456 Elm St"},
		{Name: "Kiki's Pizza", Address: "789 Oak Ave"},
	}
	pizzas := []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("seed pizzas: %w", err)
		}

		prices := []struct {
			restaurant, pizza, price int
		}{
			{0, 0, 10},
			{0, 1, 12},
			{1, 1, 11},
			{1, 2, 15},
			{2, 0, 9},
			{2, 2, 14},
		}
		for _, p := range prices {
			rp, err := models.NewRestaurantPizza(p.price, pizzas[p.pizza].ID, restaurants[p.restaurant].ID)
			if err != nil {
				return err
			}
			if err := tx.Create(rp).Error; err != nil {
				return fmt.Errorf("seed restaurant pizzas: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"restaurants": len(restaurants),
		"pizzas":      len(pizzas),
	}).Info("Database seeded successfully")
	return nil
}

// SeedIfEmpty seeds only a fresh store and reports whether it did
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	empty, err := IsEmpty(db)
	if err != nil {
		return false, fmt.Errorf("check for existing data: %w", err)
	}
	if !empty {
		log.Info("Database already seeded with initial data")
		return false, nil
	}
	return true, Seed(db)
}

// Reset deletes every row, children first so foreign keys hold
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Pizza{}, &models.Restaurant{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("reset %T: %w", model, err)
			}
		}
		return nil
	})
}
