package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serializers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CreateRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas
type CreateRestaurantPizzaRequest struct {
	Price        *int `json:"price"`
	PizzaID      uint `json:"pizza_id"`
	RestaurantID uint `json:"restaurant_id"`
}

// RestaurantPizzaController handles HTTP requests that price pizzas at restaurants
type RestaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) *RestaurantPizzaController {
	return &RestaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Sell a pizza at a restaurant
// @Description Create a price entry linking an existing restaurant and pizza. Price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body controllers.CreateRestaurantPizzaRequest true "Price entry"
// @Success 201 {object} serializers.RestaurantPizza
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (rpc *RestaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.GetLogger(ctx).WithError(err).Debug("Invalid restaurant pizza body")
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgInvalidBody))
		return
	}
	if req.Price == nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgValidationErrors))
		return
	}

	rp, err := models.NewRestaurantPizza(*req.Price, req.PizzaID, req.RestaurantID)
	if err != nil {
		respondCreateError(ctx, err)
		return
	}

	created, err := rpc.service.CreateRestaurantPizza(ctx.Request.Context(), *rp)
	if err != nil {
		respondCreateError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, serializers.NewRestaurantPizza(*created))
}

func respondCreateError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		middleware.GetLogger(ctx).WithField("field", validationErr.Field).Debug(validationErr.Message)
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgValidationErrors))
		return
	}

	middleware.GetLogger(ctx).WithError(err).Error("Failed to create restaurant pizza")
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create restaurant pizza"))
}
