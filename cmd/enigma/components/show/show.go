package show

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/internal/core/entities/machine"
)

type Config struct {
	Name   string
	Output io.Writer
}

type Component struct{}

type document struct {
	Name              string            `yaml:"name"`
	Rotors            []int             `yaml:"rotors,flow"`
	RotorInit         []int             `yaml:"rotor_init,flow"`
	RotorSetting      []int             `yaml:"rotor_setting,flow"`
	ReflectorLetter   string            `yaml:"reflector_letter"`
	PlugboardSettings plugboard         `yaml:"plugboard_settings"`
	PlugboardPins     string            `yaml:"plugboard_pins"`
	SavedAt           string            `yaml:"saved_at,omitempty"`
}

// plugboard is rendered as a mapping that keeps the pin order
type plugboard machine.Plugboard

func (p plugboard) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, pin := range p {
		node.Content = append(
			node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: pin.From},
			&yaml.Node{Kind: yaml.ScalarNode, Value: pin.To},
		)
	}
	return node, nil
}

func newDocument(cfg machine.Config) document {
	doc := document{
		Name:              cfg.Name,
		Rotors:            cfg.Rotors,
		RotorInit:         cfg.RotorInit,
		RotorSetting:      cfg.RotorSetting,
		ReflectorLetter:   cfg.ReflectorLetter,
		PlugboardSettings: plugboard(cfg.PlugboardSettings),
		PlugboardPins:     cfg.PlugboardSettings.String(),
	}
	if !cfg.SavedAt.IsZero() {
		doc.SavedAt = cfg.SavedAt.UTC().Format(time.RFC3339)
	}
	return doc
}

func render(w io.Writer, cfg machine.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(cfg)); err != nil {
		return err
	}
	return enc.Close()
}

func New(
	lc fx.Lifecycle,
	cfg Config,
	uc container.Container,
) *Component {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			item, err := uc.GetConfig.Execute(ctx, cfg.Name)
			if err != nil {
				return err
			}
			return render(cfg.Output, item)
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
	Show command `cmd:"" help:"Print a stored machine configuration"`
}

var Module = fx.Module("show",
	fx.Provide(New),
)
