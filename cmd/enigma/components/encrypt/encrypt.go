package encrypt

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/internal/core/usecases/encrypttext"
)

type Config struct {
	Name   string
	Text   string
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
			result, err := uc.EncryptText.Execute(ctx, encrypttext.NewRequest(cfg.Name, cfg.Text))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cfg.Output, result)
			return err
		},
	})
	return &Component{}
}

type command struct {
	Name string `help:"Name of the stored machine configuration" required:""`
	Text string `help:"Text to encrypt or decrypt, letters only"   required:""`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	return builder.
		Add(
			fx.Supply(Config{
				Name:   c.Name,
				Text:   c.Text,
				Output: os.Stdout,
			}),
			Module,
			fx.Invoke(func(*Component) {}),
		).
		Exec(context.Background())
}

type CLI struct {
	Run command `cmd:"" help:"Encrypt or decrypt text with a stored machine configuration"`
}

var Module = fx.Module("encrypt",
	fx.Provide(New),
)
