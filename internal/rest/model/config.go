package model

import (
	"time"

	"github.com/sergeii/enigma/internal/core/entities/machine"
)

type Config struct {
	Name              string            `json:"name"`
	Rotors            []int             `json:"rotors"`
	RotorInit         []int             `json:"rotor_init"`
	RotorSetting      []int             `json:"rotor_setting"`
	ReflectorLetter   string            `json:"reflector_letter"`
	PlugboardSettings machine.Plugboard `json:"plugboard_settings"`
	SavedAt           string            `json:"saved_at"`
}

func NewConfigFromDomain(cfg machine.Config) Config {
	return Config{
		Name:              cfg.Name,
		Rotors:            cfg.Rotors,
		RotorInit:         cfg.RotorInit,
		RotorSetting:      cfg.RotorSetting,
		ReflectorLetter:   cfg.ReflectorLetter,
		PlugboardSettings: cfg.PlugboardSettings,
		SavedAt:           formatTime(cfg.SavedAt),
	}
}

type ConfigListItem struct {
	Name    string `json:"name"`
	SavedAt string `json:"saved_at"`
}

func NewConfigListItemFromDomain(cfg machine.Config) ConfigListItem {
	return ConfigListItem{
		Name:    cfg.Name,
		SavedAt: formatTime(cfg.SavedAt),
	}
}

// SaveConfig is the payload of a configuration update.
// Rotors are 0-based catalog indices, same as the stored record.
type SaveConfig struct {
	Rotors            []int             `binding:"required" json:"rotors"`
	RotorInit         []int             `binding:"required" json:"rotor_init"`
	RotorSetting      []int             `binding:"required" json:"rotor_setting"`
	ReflectorLetter   string            `binding:"required" json:"reflector_letter"`
	PlugboardSettings machine.Plugboard `json:"plugboard_settings"`
}

func (p SaveConfig) ToDomain(name string) machine.Config {
	return machine.Config{
		Name:              name,
		Rotors:            p.Rotors,
		RotorInit:         p.RotorInit,
		RotorSetting:      p.RotorSetting,
		ReflectorLetter:   p.ReflectorLetter,
		PlugboardSettings: p.PlugboardSettings,
	}
}

type Text struct {
	Text string `json:"text"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
