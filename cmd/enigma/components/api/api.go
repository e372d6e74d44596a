package api

import (
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/build"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/components/observer"
	"github.com/sergeii/enigma/cmd/enigma/serving"
	"github.com/sergeii/enigma/internal/rest"
	"github.com/sergeii/enigma/internal/rest/api"
)

type Config struct {
	HTTPListenAddr      string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPShutdownTimeout time.Duration
}

type Component struct {
	server *serving.Server
}

// Addr is the address the API server listens on once started.
func (c *Component) Addr() net.Addr {
	return c.server.Addr()
}

func New(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	router *gin.Engine,
	cfg Config,
	logger *zerolog.Logger,
) (*Component, error) {
	server, err := serving.Bind(lc, shutdowner, logger, serving.Params{
		Name:            "api",
		ListenAddr:      cfg.HTTPListenAddr,
		ReadTimeout:     cfg.HTTPReadTimeout,
		WriteTimeout:    cfg.HTTPWriteTimeout,
		ShutdownTimeout: cfg.HTTPShutdownTimeout,
		Handler:         router,
	})
	if err != nil {
		return nil, err
	}
	return &Component{server: server}, nil
}

type command struct {
	HTTPListenAddress   string        `default:":3000" help:"Sets the address where the API server listens for incoming http requests"`         // nolint:lll
	HTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`             // nolint:lll
	HTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response after reading the request body"`     // nolint:lll
	HTTPShutdownTimeout time.Duration `default:"10s"   help:"Defines how long the server waits to gracefully close connections before exiting"` // nolint:lll

	MetricObserveInterval time.Duration `default:"5s" help:"Sets how often repository metrics are collected"`
}

func (c *command) Run(globals *commander.Globals, builder *application.Builder) error {
	if globals.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	app := builder.
		Add(
			fx.Supply(
				Config{
					HTTPListenAddr:      c.HTTPListenAddress,
					HTTPReadTimeout:     c.HTTPReadTimeout,
					HTTPWriteTimeout:    c.HTTPWriteTimeout,
					HTTPShutdownTimeout: c.HTTPShutdownTimeout,
				},
				observer.Config{
					ObserveInterval: c.MetricObserveInterval,
				},
			),
			Module,
			observer.Module,
			fx.Invoke(func(logger *zerolog.Logger, _ *Component, _ *observer.Component) {
				logger.Info().
					Str("version", build.Version).
					Str("commit", build.Commit).
					Str("built", build.Time).
					Str("address", c.HTTPListenAddress).
					Msg("Starting API server")
			}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	API command `cmd:"" help:"Start API server"`
}

var Module = fx.Module("api",
	fx.Provide(fx.Private, api.New),
	fx.Provide(rest.NewRouter),
	fx.Provide(New),
)
