package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants, without their pizzas
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its pizzas and prices.
	// It returns nil and no error when the restaurant does not exist.
	GetRestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and everything it sells.
	// It returns false when there was nothing to delete.
	DeleteRestaurant(ctx context.Context, id uint) (bool, error)
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return &restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		// Removes the restaurant_pizzas rows first, then the restaurant
		if err := tx.Select("RestaurantPizzas").Delete(&restaurant).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete restaurant %d: %w", id, err)
	}
	return deleted, nil
}
