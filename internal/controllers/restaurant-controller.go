package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/serializers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their pizzas
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID returns a restaurant with its pizzas and prices
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its prices
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants, without the pizzas they sell
// @Tags restaurants
// @Produce json
// @Success 200 {array} serializers.Restaurant
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (rc *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := rc.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		middleware.GetLogger(ctx).WithError(err).Error("Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}
	ctx.JSON(http.StatusOK, serializers.NewRestaurants(restaurants, serializers.WithoutAssociations()))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with the pizzas it sells and their prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} serializers.Restaurant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (rc *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		return
	}

	restaurant, err := rc.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.GetLogger(ctx).WithError(err).WithField("restaurant_id", id).Error("Failed to retrieve restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant"))
		return
	}
	if restaurant == nil {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}
	ctx.JSON(http.StatusOK, serializers.NewRestaurant(*restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant together with the pizzas it sells
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (rc *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		return
	}

	deleted, err := rc.service.DeleteRestaurant(ctx.Request.Context(), id)
	if err != nil {
		middleware.GetLogger(ctx).WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete restaurant"))
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	middleware.GetLogger(ctx).WithField("restaurant_id", id).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}

// restaurantID parses the :id path parameter, answering 400 itself when it is not a positive integer
func restaurantID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(models.MsgInvalidID))
		return 0, false
	}
	return uint(id), true
}
