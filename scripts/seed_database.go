package main

import (
	"flag"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	reset := flag.Bool("reset", false, "Delete every restaurant, pizza and price before seeding")
	uri := flag.String("uri", "", "Database URI, defaults to DB_URI or sqlite:///app.db")
	flag.Parse()

	_ = godotenv.Load()

	if *uri == "" {
		*uri = config.GetEnvWithDefault("DB_URI", "sqlite:///app.db")
	}

	dbConfig, err := database.ParseURI(*uri)
	if err != nil {
		log.Fatal("Invalid database URI: ", err)
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.Fatal("Failed to reset database: ", err)
		}
		fmt.Println("Database cleared")
	}

	seeded, err := database.SeedIfEmpty(db)
	if err != nil {
		log.Fatal("Failed to seed database: ", err)
	}
	if !seeded {
		fmt.Println("Database already holds data, run with -reset to start over")
	}

	printSummary(db)
}

// printSummary prints how many rows each table holds
func printSummary(db *gorm.DB) {
	var restaurants, pizzas, prices int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&prices)

	fmt.Printf("Restaurants: %d\n", restaurants)
	fmt.Printf("Pizzas: %d\n", pizzas)
	fmt.Printf("Restaurant pizzas: %d\n", prices)
}
