package configure

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/internal/core/entities/machine"
)

type Config struct {
	Machine machine.Config
	Output  io.Writer
}

type Component struct{}

func New(
	lc fx.Lifecycle,
	cfg Config,
	uc container.Container,
	logger *zerolog.Logger,
) *Component {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			saved, err := uc.SaveConfig.Execute(ctx, cfg.Machine)
			if err != nil {
				logger.Debug().Err(err).Str("name", cfg.Machine.Name).Msg("Configuration not saved")
				return err
			}
			_, err = fmt.Fprintf(cfg.Output, "Saved configuration %s\n", saved.Name)
			return err
		},
	})
	return &Component{}
}

type command struct {
	Name            string `help:"Name of the machine, used to store the configuration" required:""`
	Rotors          string `default:"1,2,3" help:"Comma separated rotor numbers from left to right, 1 based"` // nolint:lll
	RotorInit       string `default:"0,0,0" help:"Comma separated initial rotor positions, 0 based"`
	RotorSetting    string `default:"0,0,0" help:"Comma separated ring settings, 0 based"`
	ReflectorLetter string `default:"B"     help:"The letter indicating the reflector (B or C)"`
	PlugboardPins   string `default:""      help:"Comma separated pairs of letters like AK,XP"`
	Random          bool   `help:"Generate a random configuration, ignoring the other machine settings"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	cfg, err := c.machineConfig()
	if err != nil {
		return err
	}
	return builder.
		Add(
			fx.Supply(Config{
				Machine: cfg,
				Output:  os.Stdout,
			}),
			Module,
			fx.Invoke(func(*Component) {}),
		).
		Exec(context.Background())
}

func (c *command) machineConfig() (machine.Config, error) {
	if c.Random {
		return machine.NewRandom(c.Name), nil
	}

	rotors, err := machine.ParseRotors(c.Rotors)
	if err != nil {
		return machine.Blank, fmt.Errorf("--rotors: %w", err)
	}
	positions, err := machine.ParseNumbers(c.RotorInit)
	if err != nil {
		return machine.Blank, fmt.Errorf("--rotor-init: %w", err)
	}
	rings, err := machine.ParseNumbers(c.RotorSetting)
	if err != nil {
		return machine.Blank, fmt.Errorf("--rotor-setting: %w", err)
	}
	plugboard, err := machine.ParsePlugboard(c.PlugboardPins)
	if err != nil {
		return machine.Blank, fmt.Errorf("--plugboard-pins: %w", err)
	}

	return machine.Config{
		Name:              c.Name,
		Rotors:            rotors,
		RotorInit:         positions,
		RotorSetting:      rings,
		ReflectorLetter:   c.ReflectorLetter,
		PlugboardSettings: plugboard,
	}, nil
}

type CLI struct {
	Config command `cmd:"" help:"Build and store a named machine configuration"`
}

var Module = fx.Module("configure",
	fx.Provide(New),
)
