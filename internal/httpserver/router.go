package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const apiKeyHeader = "X-Api-Key"

// buildRouter wires routes for the ordering backend.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", apiKeyHeader},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api", apiKeyMiddleware(deps.APIKey))
	api.GET("/", apiRootHandler)
	api.GET("/menu", menuHandler(deps.Menu))
	api.POST("/orders", createOrderHandler(deps.Orders))
	api.GET("/orders/:orderID", getOrderHandler(deps.Orders))
	api.POST("/orders/confirm", confirmOrderHandler(deps.Orders))
	api.POST("/payments/process", processPaymentHandler(deps.Payments))

	return router
}

func apiKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key != "" && c.GetHeader(apiKeyHeader) != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}
		c.Next()
	}
}

func apiRootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Brooklyn Bodega API - Ready for orders!"})
}
