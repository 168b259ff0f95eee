package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter настраивает и возвращает экземпляр Gin роутера.
// metricsHandler is mounted at /metrics when non-nil.
func SetupRouter(resultsHandler *ResultsHandler, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/results", resultsHandler.GetResultsHandler)
		v1.GET("/results/failed", resultsHandler.GetFailedResultsHandler)
	}

	return router
}
