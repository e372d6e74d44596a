package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/rest/api"
	"github.com/sergeii/enigma/internal/rest/middleware"
)

func NewRouter(
	a *api.API,
	collector *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logging(logger, clock),
		middleware.Metrics(collector, clock),
	)
	router.GET("/status", a.Status)
	router.GET("/api/rotors", a.Rotors)

	configs := router.Group("/api/configs")
	configs.GET("", a.ListConfigs)
	configs.GET("/:name", a.ViewConfig)
	configs.PUT("/:name", a.SaveConfig)
	configs.DELETE("/:name", a.RemoveConfig)
	configs.POST("/:name/encrypt", a.EncryptText)

	return router
}
