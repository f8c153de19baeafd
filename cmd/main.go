package main

import (
	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices each restaurant charges for them
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize Gin router
	engine := router.NewRouter(db, router.Options{
		Logger:         log.StandardLogger(),
		AllowedOrigins: configuration.CORSAllowedOrigins,
		EnableSwagger:  true,
	})

	// Start the server
	log.Infof("Starting server on %s", configuration.Address())
	checkPanicErr(engine.Run(configuration.Address()))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and the configured level
func setUpLogger(conf *config.Config) {
	level := conf.LogrusLevel()
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(level)
	database.SetLogLevel(level)

	if conf.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase opens the store, creates missing tables and seeds an empty store
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if !conf.SeedDatabase {
		log.Info("Database seeding disabled")
		return db
	}

	seeded, err := database.SeedIfEmpty(db)
	checkPanicErr(err)
	if seeded {
		log.Info("Database was empty, seeded initial data")
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}
