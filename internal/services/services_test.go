package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     database.DriverSQLite,
		Path:       ":memory:",
		MaxRetries: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// seedFixtures stores two restaurants and two pizzas; restaurant 1 sells both pizzas
func seedFixtures(t *testing.T, db *gorm.DB) {
	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "123 Main St"},
		{Name: "Sanjay's Pizza", Address: "456 Elm St"},
	}
	require.NoError(t, db.Create(&restaurants).Error)

	pizzas := []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	}
	require.NoError(t, db.Create(&pizzas).Error)

	prices := []models.RestaurantPizza{
		{Price: 10, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
		{Price: 12, RestaurantID: restaurants[0].ID, PizzaID: pizzas[1].ID},
		{Price: 9, RestaurantID: restaurants[1].ID, PizzaID: pizzas[0].ID},
	}
	require.NoError(t, db.Create(&prices).Error)
}

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	service := NewRestaurantService(db)

	restaurants, err := service.GetAllRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Karen's Pizza Shack", restaurants[0].Name)
	assert.Empty(t, restaurants[0].RestaurantPizzas)
}

func TestGetRestaurantByID(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	service := NewRestaurantService(db)

	restaurant, err := service.GetRestaurantByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, restaurant)
	assert.Equal(t, "123 Main St", restaurant.Address)
	require.Len(t, restaurant.RestaurantPizzas, 2)
	require.NotNil(t, restaurant.RestaurantPizzas[0].Pizza)
	assert.Equal(t, "Emma", restaurant.RestaurantPizzas[0].Pizza.Name)
	assert.Nil(t, restaurant.RestaurantPizzas[0].Restaurant)
}

func TestGetRestaurantByIDMissingIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	restaurant, err := service.GetRestaurantByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, restaurant)
}

func TestDeleteRestaurantCascades(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	service := NewRestaurantService(db)

	deleted, err := service.DeleteRestaurant(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int64
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", 1).Count(&count)
	assert.Zero(t, count)

	// other restaurants keep their pizzas
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", 2).Count(&count)
	assert.Equal(t, int64(1), count)

	// pizzas are not touched
	db.Model(&models.Pizza{}).Count(&count)
	assert.Equal(t, int64(2), count)

	restaurant, err := service.GetRestaurantByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, restaurant)
}

func TestDeleteRestaurantMissing(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	deleted, err := service.DeleteRestaurant(context.Background(), 7)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetAllPizzas(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	service := NewPizzaService(db)

	pizzas, err := service.GetAllPizzas(context.Background())
	require.NoError(t, err)
	require.Len(t, pizzas, 2)
	assert.Equal(t, "Geri", pizzas[1].Name)
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	service := NewRestaurantPizzaService(db)

	created, err := service.CreateRestaurantPizza(context.Background(), models.RestaurantPizza{
		Price:        5,
		PizzaID:      2,
		RestaurantID: 2,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 5, created.Price)
	require.NotNil(t, created.Restaurant)
	require.NotNil(t, created.Pizza)
	assert.Equal(t, "Sanjay's Pizza", created.Restaurant.Name)
	assert.Equal(t, "Geri", created.Pizza.Name)
}

func TestCreateRestaurantPizzaPriceBounds(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	service := NewRestaurantPizzaService(db)

	for _, price := range []int{1, 15, 30} {
		_, err := service.CreateRestaurantPizza(context.Background(), models.RestaurantPizza{
			Price: price, PizzaID: 1, RestaurantID: 2,
		})
		assert.NoError(t, err, "price %d", price)
	}

	var before int64
	db.Model(&models.RestaurantPizza{}).Count(&before)

	for _, price := range []int{-1, 0, 31, 50} {
		created, err := service.CreateRestaurantPizza(context.Background(), models.RestaurantPizza{
			Price: price, PizzaID: 1, RestaurantID: 2,
		})
		assert.Nil(t, created)

		var validationErr *models.ValidationError
		assert.True(t, errors.As(err, &validationErr), "price %d", price)
	}

	var after int64
	db.Model(&models.RestaurantPizza{}).Count(&after)
	assert.Equal(t, before, after)
}

func TestCreateRestaurantPizzaRejectsBypassedValidation(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)

	// writing directly through gorm still goes through the BeforeCreate hook
	err := db.Create(&models.RestaurantPizza{Price: 99, PizzaID: 1, RestaurantID: 1}).Error

	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestCreateRestaurantPizzaMissingReferences(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)
	service := NewRestaurantPizzaService(db)

	created, err := service.CreateRestaurantPizza(context.Background(), models.RestaurantPizza{
		Price: 5, PizzaID: 100, RestaurantID: 1,
	})
	assert.Error(t, err)
	assert.Nil(t, created)

	var validationErr *models.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}
