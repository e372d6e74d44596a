package list

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/internal/core/entities/machine"
)

type Config struct {
	Output io.Writer
}

type Component struct{}

func render(w io.Writer, items []machine.Config) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, item := range items {
		savedAt := "-"
		if !item.SavedAt.IsZero() {
			savedAt = item.SavedAt.UTC().Format(time.RFC3339)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", item.Name, savedAt); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func New(
	lc fx.Lifecycle,
	cfg Config,
	uc container.Container,
) *Component {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			items, err := uc.ListConfigs.Execute(ctx)
			if err != nil {
				return err
			}
			return render(cfg.Output, items)
		},
	})
	return &Component{}
}

type command struct{}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	return builder.
		Add(
			fx.Supply(Config{
				Output: os.Stdout,
			}),
			Module,
			fx.Invoke(func(*Component) {}),
		).
		Exec(context.Background())
}

type CLI struct {
	List command `cmd:"" help:"List stored machine configurations"`
}

var Module = fx.Module("list",
	fx.Provide(New),
)
