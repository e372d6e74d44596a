package application

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/components/exporter"
	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/cmd/enigma/logging"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/validation"
)

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

// Exec starts the application and stops it right away.
// One-shot commands do their work in the start hooks, so the first failing hook aborts the rest.
func (b *Builder) Exec(ctx context.Context) error {
	app := b.Build()
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	return app.Stop(ctx)
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Provide(metrics.New),
	container.Module,
)
