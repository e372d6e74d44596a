package configure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/entities/machine"
)

func TestCommand_MachineConfig(t *testing.T) {
	c := command{
		Name:            "daily",
		Rotors:          "8,6,4",
		RotorInit:       "18,10,12",
		RotorSetting:    "1,1,5",
		ReflectorLetter: "B",
		PlugboardPins:   "BQ,CR",
	}

	cfg, err := c.machineConfig()
	require.NoError(t, err)
	assert.Equal(t, machine.Config{
		Name:              "daily",
		Rotors:            []int{7, 5, 3},
		RotorInit:         []int{18, 10, 12},
		RotorSetting:      []int{1, 1, 5},
		ReflectorLetter:   "B",
		PlugboardSettings: machine.Plugboard{{From: "B", To: "Q"}, {From: "C", To: "R"}},
	}, cfg)
}

func TestCommand_MachineConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     command
		wantErr error
	}{
		{
			"rotors are not numbers",
			command{Rotors: "I,II,III", RotorInit: "0,0,0", RotorSetting: "0,0,0"},
			machine.ErrInvalidNumberList,
		},
		{
			"positions are not numbers",
			command{Rotors: "1,2,3", RotorInit: "A,A,A", RotorSetting: "0,0,0"},
			machine.ErrInvalidNumberList,
		},
		{
			"ring settings are not numbers",
			command{Rotors: "1,2,3", RotorInit: "0,0,0", RotorSetting: "0,,0"},
			machine.ErrInvalidNumberList,
		},
		{
			"plugboard pin is too long",
			command{Rotors: "1,2,3", RotorInit: "0,0,0", RotorSetting: "0,0,0", PlugboardPins: "ABC"},
			machine.ErrInvalidPlugboard,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.machineConfig()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCommand_MachineConfig_Random(t *testing.T) {
	c := command{Name: "random", Rotors: "garbage", Random: true}

	cfg, err := c.machineConfig()
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.Name)
	assert.Len(t, cfg.Rotors, 3)
	_, err = cfg.Build()
	assert.NoError(t, err)
}

func TestCommand_MachineConfig_PinsApplyInGivenOrder(t *testing.T) {
	c := command{
		Name:            "reused",
		Rotors:          "1,2,3",
		RotorInit:       "0,0,0",
		RotorSetting:    "0,0,0",
		ReflectorLetter: "B",
		PlugboardPins:   "CA,AB",
	}

	cfg, err := c.machineConfig()
	require.NoError(t, err)
	assert.Equal(t, machine.Plugboard{{From: "C", To: "A"}, {From: "A", To: "B"}}, cfg.PlugboardSettings)

	m, err := cfg.Build()
	require.NoError(t, err)
	got, err := m.EncryptText("HELLOWORLDCABC")
	require.NoError(t, err)
	assert.Equal(t, "ILADBBMTBZKFAT", got)
}
