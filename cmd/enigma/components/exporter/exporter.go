package exporter

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/serving"
	"github.com/sergeii/enigma/internal/metrics"
)

type Config struct {
	HTTPListenAddress   string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPShutdownTimeout time.Duration
}

type Component struct {
	server *serving.Server
}

// Addr is the address the exporter listens on once started.
func (c *Component) Addr() net.Addr {
	return c.server.Addr()
}

func newHandler(collector *metrics.Collector) http.Handler {
	registry := collector.GetRegistry()
	metricsHandler := promhttp.InstrumentMetricHandler(
		registry,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(metricsHandler))
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func New(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg Config,
	logger *zerolog.Logger,
	collector *metrics.Collector,
) (*Component, error) {
	server, err := serving.Bind(lc, shutdowner, logger, serving.Params{
		Name:            "exporter",
		ListenAddr:      cfg.HTTPListenAddress,
		ReadTimeout:     cfg.HTTPReadTimeout,
		WriteTimeout:    cfg.HTTPWriteTimeout,
		ShutdownTimeout: cfg.HTTPShutdownTimeout,
		Handler:         newHandler(collector),
	})
	if err != nil {
		return nil, err
	}
	return &Component{server: server}, nil
}

var Module = fx.Module("exporter",
	fx.Provide(New),
)
