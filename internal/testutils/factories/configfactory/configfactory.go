package configfactory

import (
	"context"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/pkg/random"
)

type BuildParams struct {
	Name         string
	Rotors       []int
	RotorInit    []int
	RotorSetting []int
	Reflector    string
	Plugboard    []string
}

type BuildOption func(*BuildParams)

func WithName(name string) BuildOption {
	return func(p *BuildParams) {
		p.Name = name
	}
}

func WithRandomName() BuildOption {
	return func(p *BuildParams) {
		p.Name = "machine-" + string(rune('a'+random.RandInt(0, 26))) + string(rune('a'+random.RandInt(0, 26)))
	}
}

func WithRotors(left, middle, right int) BuildOption {
	return func(p *BuildParams) {
		p.Rotors = []int{left, middle, right}
	}
}

func WithPositions(left, middle, right int) BuildOption {
	return func(p *BuildParams) {
		p.RotorInit = []int{left, middle, right}
	}
}

func WithRingSettings(left, middle, right int) BuildOption {
	return func(p *BuildParams) {
		p.RotorSetting = []int{left, middle, right}
	}
}

func WithReflector(letter string) BuildOption {
	return func(p *BuildParams) {
		p.Reflector = letter
	}
}

// WithPlugboard takes the pins in order, e.g. "AK", "XP"
func WithPlugboard(pins ...string) BuildOption {
	return func(p *BuildParams) {
		p.Plugboard = pins
	}
}

// Build returns the reference configuration used across the tests,
// i.e. rotors VIII, VI, IV at S, K, M with rings B, B, F and reflector B.
func Build(opts ...BuildOption) machine.Config {
	params := BuildParams{
		Name:         "test",
		Rotors:       []int{7, 5, 3},
		RotorInit:    []int{18, 10, 12},
		RotorSetting: []int{1, 1, 5},
		Reflector:    "B",
		Plugboard:    []string{"BQ", "CR", "DI", "EJ", "KW", "MT", "OS", "PX", "UZ", "GH"},
	}

	for _, opt := range opts {
		opt(&params)
	}

	board := make(machine.Plugboard, 0, len(params.Plugboard))
	for _, pin := range params.Plugboard {
		board = board.Set(pin[:1], pin[1:])
	}

	return machine.Config{
		Name:              params.Name,
		Rotors:            params.Rotors,
		RotorInit:         params.RotorInit,
		RotorSetting:      params.RotorSetting,
		ReflectorLetter:   params.Reflector,
		PlugboardSettings: board,
	}
}

func Save(
	ctx context.Context,
	repo repositories.ConfigRepository,
	cfg machine.Config,
) machine.Config {
	saved, err := repo.Save(ctx, cfg)
	if err != nil {
		panic(err)
	}
	return saved
}
