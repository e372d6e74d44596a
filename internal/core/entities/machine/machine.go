package machine

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/sergeii/enigma/pkg/enigma"
)

var ErrInvalidConfig = errors.New("invalid machine configuration")

// Config is a named machine configuration.
// Rotors are 0-based catalog indices, ordered left, middle, right.
type Config struct {
	Name              string    `validate:"required,slugable"`
	Rotors            []int     `validate:"len=3,dive,gte=0,lte=7"`
	RotorInit         []int     `validate:"len=3,dive,gte=0,lte=25"`
	RotorSetting      []int     `validate:"len=3,dive,gte=0,lte=25"`
	ReflectorLetter   string    `validate:"len=1"`
	PlugboardSettings Plugboard `validate:"dive"`
	SavedAt           time.Time
}

var Blank Config // nolint: gochecknoglobals

func (c Config) Validate(v *validator.Validate) error {
	if err := v.Struct(&c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Pairs returns the plugboard cables in the order they were entered.
func (c Config) Pairs() []enigma.Pair {
	pairs := make([]enigma.Pair, 0, len(c.PlugboardSettings))
	for _, pin := range c.PlugboardSettings {
		if len(pin.From) == 0 || len(pin.To) == 0 {
			continue
		}
		pairs = append(pairs, enigma.Pair{From: pin.From[0], To: pin.To[0]})
	}
	return pairs
}

// Settings converts a validated configuration into machine settings.
func (c Config) Settings() (enigma.Settings, error) {
	if len(c.Rotors) != 3 || len(c.RotorInit) != 3 || len(c.RotorSetting) != 3 {
		return enigma.Settings{}, ErrInvalidConfig
	}
	return enigma.Settings{
		Rotors:       [3]int(c.Rotors),
		Positions:    [3]int(c.RotorInit),
		RingSettings: [3]int(c.RotorSetting),
		Plugboard:    c.Pairs(),
		Reflector:    c.ReflectorLetter,
	}, nil
}

// Build assembles a ready to use machine at the configured initial positions.
func (c Config) Build() (*enigma.Enigma, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}
	return enigma.NewFromSettings(settings)
}

// Key is the storage key of a configuration name.
func Key(name string) string {
	return slug.Make(name)
}
