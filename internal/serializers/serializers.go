// Package serializers turns stored rows into the JSON shapes the API returns.
//
// Restaurants and pizzas are linked through restaurant pizzas in both
// directions, so each shape decides which edges it follows:
//
//	restaurant -> restaurant_pizzas -> pizza
//	pizza      -> restaurant_pizzas -> restaurant
//	restaurant_pizza -> restaurant, pizza
//
// A nested restaurant or pizza never carries its own restaurant_pizzas.
package serializers

import "github.com/franciscosanchezn/pizza-restaurants-api/internal/models"

type options struct {
	withoutAssociations bool
}

// Option changes how a single call serializes its input
type Option func(*options)

// WithoutAssociations drops the restaurant_pizzas field entirely
func WithoutAssociations() Option {
	return func(o *options) {
		o.withoutAssociations = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Restaurant is the JSON shape of a restaurant
type Restaurant struct {
	ID               uint               `json:"id"`
	Name             string             `json:"name"`
	Address          string             `json:"address"`
	RestaurantPizzas *[]RestaurantPizza `json:"restaurant_pizzas,omitempty"`
}

// Pizza is the JSON shape of a pizza
type Pizza struct {
	ID               uint               `json:"id"`
	Name             string             `json:"name"`
	Ingredients      string             `json:"ingredients"`
	RestaurantPizzas *[]RestaurantPizza `json:"restaurant_pizzas,omitempty"`
}

// RestaurantPizza is the JSON shape of a price entry
type RestaurantPizza struct {
	ID           uint        `json:"id"`
	Price        int         `json:"price"`
	PizzaID      uint        `json:"pizza_id"`
	RestaurantID uint        `json:"restaurant_id"`
	Pizza        *Pizza      `json:"pizza,omitempty"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
}

// NewRestaurant serializes a restaurant with its price entries, each showing its pizza
func NewRestaurant(r models.Restaurant, opts ...Option) Restaurant {
	out := Restaurant{ID: r.ID, Name: r.Name, Address: r.Address}
	if buildOptions(opts).withoutAssociations {
		return out
	}

	entries := make([]RestaurantPizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		entry := restaurantPizzaFields(rp)
		if rp.Pizza != nil {
			pizza := NewPizza(*rp.Pizza, WithoutAssociations())
			entry.Pizza = &pizza
		}
		entries = append(entries, entry)
	}
	out.RestaurantPizzas = &entries
	return out
}

// NewRestaurants serializes a list of restaurants with the same options
func NewRestaurants(restaurants []models.Restaurant, opts ...Option) []Restaurant {
	out := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, NewRestaurant(r, opts...))
	}
	return out
}

// NewPizza serializes a pizza with its price entries, each showing its restaurant
func NewPizza(p models.Pizza, opts ...Option) Pizza {
	out := Pizza{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
	if buildOptions(opts).withoutAssociations {
		return out
	}

	entries := make([]RestaurantPizza, 0, len(p.RestaurantPizzas))
	for _, rp := range p.RestaurantPizzas {
		entry := restaurantPizzaFields(rp)
		if rp.Restaurant != nil {
			restaurant := NewRestaurant(*rp.Restaurant, WithoutAssociations())
			entry.Restaurant = &restaurant
		}
		entries = append(entries, entry)
	}
	out.RestaurantPizzas = &entries
	return out
}

// NewPizzas serializes a list of pizzas with the same options
func NewPizzas(pizzas []models.Pizza, opts ...Option) []Pizza {
	out := make([]Pizza, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, NewPizza(p, opts...))
	}
	return out
}

// NewRestaurantPizza serializes a price entry with whichever of its restaurant and pizza are loaded
func NewRestaurantPizza(rp models.RestaurantPizza) RestaurantPizza {
	out := restaurantPizzaFields(rp)
	if rp.Restaurant != nil {
		restaurant := NewRestaurant(*rp.Restaurant, WithoutAssociations())
		out.Restaurant = &restaurant
	}
	if rp.Pizza != nil {
		pizza := NewPizza(*rp.Pizza, WithoutAssociations())
		out.Pizza = &pizza
	}
	return out
}

func restaurantPizzaFields(rp models.RestaurantPizza) RestaurantPizza {
	return RestaurantPizza{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
}
