package controllers

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const serviceName = "pizza-restaurants-api"

// SystemController serves the landing page and the health check
type SystemController struct {
	db *gorm.DB
}

// NewSystemController creates a new instance of SystemController
func NewSystemController(db *gorm.DB) *SystemController {
	return &SystemController{db: db}
}

// Index serves a minimal HTML landing page
func (sc *SystemController) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Code challenge</h1>"))
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running and can reach its database
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (sc *SystemController) HealthCheck(c *gin.Context) {
	status, code, dbStatus := "healthy", http.StatusOK, "up"
	if err := sc.ping(c); err != nil {
		middleware.GetLogger(c).WithError(err).Error("Database health check failed")
		status, code, dbStatus = "unhealthy", http.StatusServiceUnavailable, "down"
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}

func (sc *SystemController) ping(c *gin.Context) error {
	sqlDB, err := sc.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request.Context())
}
