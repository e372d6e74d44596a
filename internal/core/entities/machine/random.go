package machine

import (
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/random"
)

const randomCables = 10

// NewRandom draws a configuration the way a daily key sheet did:
// three different rotors, random positions and rings, reflector B
// and ten plugboard cables.
func NewRandom(name string) Config {
	cfg := Config{
		Name:              name,
		Rotors:            random.Sample(len(enigma.Catalog), 3),
		RotorInit:         make([]int, 3),
		RotorSetting:      make([]int, 3),
		ReflectorLetter:   "B",
		PlugboardSettings: make(Plugboard, 0, randomCables),
	}
	for i := 0; i < 3; i++ {
		cfg.RotorInit[i] = random.RandInt(0, enigma.Size)
		cfg.RotorSetting[i] = random.RandInt(0, enigma.Size)
	}
	letters := random.Sample(enigma.Size, randomCables*2)
	for i := 0; i < len(letters); i += 2 {
		from := string(enigma.Letter(letters[i]))
		to := string(enigma.Letter(letters[i+1]))
		cfg.PlugboardSettings = cfg.PlugboardSettings.Set(from, to)
	}
	return cfg
}
