package remove

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/container"
)

type Config struct {
	Name   string
	Output io.Writer
}

type Component struct{}

func New(
	lc fx.Lifecycle,
	cfg Config,
	uc container.Container,
) *Component {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := uc.RemoveConfig.Execute(ctx, cfg.Name); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cfg.Output, "Removed configuration %s\n", cfg.Name)
			return err
		},
	})
	return &Component{}
}

type command struct {
	Name string `help:"Name of the stored machine configuration" required:""`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	return builder.
		Add(
			fx.Supply(Config{
				Name:   c.Name,
				Output: os.Stdout,
			}),
			Module,
			fx.Invoke(func(*Component) {}),
		).
		Exec(context.Background())
}

type CLI struct {
	Remove command `cmd:"" help:"Remove a stored machine configuration"`
}

var Module = fx.Module("remove",
	fx.Provide(New),
)
