package models

// Pizza represents a pizza that restaurants can put on their menu
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`

	// Pizzas cannot be deleted while a restaurant still sells them
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
