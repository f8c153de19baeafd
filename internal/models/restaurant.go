package models

// Restaurant represents a restaurant selling pizzas
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	// Deleting a restaurant removes everything it sells
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
