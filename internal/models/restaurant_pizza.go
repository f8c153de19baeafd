package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	// MinPrice and MaxPrice bound the price a restaurant can charge for a pizza
	MinPrice = 1
	MaxPrice = 30
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RestaurantPizza is the association between a restaurant and a pizza it sells, with its price
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null" json:"price" validate:"gte=1,lte=30"`
	PizzaID      uint `gorm:"index" json:"pizza_id"`
	RestaurantID uint `gorm:"index" json:"restaurant_id"`

	Restaurant *Restaurant `json:"-"`
	Pizza      *Pizza      `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// NewRestaurantPizza builds a RestaurantPizza and validates it.
// An out of range price returns a *ValidationError and no value.
func NewRestaurantPizza(price int, pizzaID, restaurantID uint) (*RestaurantPizza, error) {
	rp := &RestaurantPizza{
		Price:        price,
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}
	if err := rp.Validate(); err != nil {
		return nil, err
	}
	return rp, nil
}

// Validate checks the struct tags and reports the first failing field as a *ValidationError
func (rp *RestaurantPizza) Validate() error {
	err := validate.Struct(rp)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fe := fieldErrors[0]
	field := strings.ToLower(fe.Field())
	switch field {
	case "price":
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Price must be between %d and %d.", MinPrice, MaxPrice),
		}
	default:
		return &ValidationError{Field: field, Message: fmt.Sprintf("failed on %s", fe.Tag())}
	}
}

// BeforeCreate refuses to insert a row that does not pass Validate
func (rp *RestaurantPizza) BeforeCreate(tx *gorm.DB) error {
	return rp.Validate()
}
