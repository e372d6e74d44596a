package observer

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/metrics/observers/configobserver"
)

type Config struct {
	ObserveInterval time.Duration
}

type Component struct {
	clock     clockwork.Clock
	collector *metrics.Collector
	interval  time.Duration
}

// loop refreshes the observed metrics right away and then on every tick until ctx is done.
func (c *Component) loop(ctx context.Context) {
	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()

	c.collector.Observe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			c.collector.Observe(ctx)
		}
	}
}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) *Component {
	component := &Component{
		clock:     clock,
		collector: collector,
		interval:  cfg.ObserveInterval,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info().Dur("interval", cfg.ObserveInterval).Msg("Starting observer")
			go func() {
				defer close(done)
				component.loop(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				logger.Info().Msg("Observer stopped")
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})

	return component
}

type command struct {
	MetricObserveInterval time.Duration `default:"5s" help:"Sets how often metrics are collected"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(Config{
				ObserveInterval: c.MetricObserveInterval,
			}),
			Module,
			fx.Invoke(func(_ *Component) {}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	Observer command `cmd:"" help:"Start metrics observer"`
}

var Module = fx.Module("observer",
	fx.Invoke(
		configobserver.New,
	),
	fx.Provide(New),
)
