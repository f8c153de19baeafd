package router

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options controls the parts of the router that vary between deployments
type Options struct {
	Logger         *logrus.Logger
	AllowedOrigins []string
	// EnableSwagger serves the API docs under /swagger
	EnableSwagger bool
}

// NewRouter initializes the Gin router, wiring services over db into the controllers
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORS(opts.AllowedOrigins),
	)

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))
	systemController := controllers.NewSystemController(db)

	router.GET("/", systemController.Index)
	router.GET("/health", systemController.HealthCheck)

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	if opts.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}
