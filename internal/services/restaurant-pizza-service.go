package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService records which restaurant sells which pizza, and at what price
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and stores the association, then returns it
	// with its restaurant and pizza loaded. A bad price yields a *models.ValidationError.
	CreateRestaurantPizza(ctx context.Context, rp models.RestaurantPizza) (*models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, rp models.RestaurantPizza) (*models.RestaurantPizza, error) {
	if err := rp.Validate(); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&rp).Error; err != nil {
		return nil, fmt.Errorf("create restaurant pizza: %w", err)
	}

	var created models.RestaurantPizza
	if err := db.Preload("Restaurant").Preload("Pizza").First(&created, rp.ID).Error; err != nil {
		return nil, fmt.Errorf("reload restaurant pizza %d: %w", rp.ID, err)
	}
	return &created, nil
}
