package configs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/repositories"
)

const filePrefix = "enigma_"

type storedConfig struct {
	Name              string            `json:"name,omitempty"`
	Rotors            []int             `json:"rotors"`
	RotorInit         []int             `json:"rotor_init"`
	RotorSetting      []int             `json:"rotor_setting"`
	ReflectorLetter   string            `json:"reflector_letter"`
	PlugboardSettings machine.Plugboard `json:"plugboard_settings"`
	SavedAt           int64             `json:"saved_at,omitempty"`
}

// Repository keeps every configuration in its own JSON file named enigma_<key>.
type Repository struct {
	dir   string
	clock clockwork.Clock
	mutex sync.Mutex
}

func New(dir string, c clockwork.Clock) *Repository {
	return &Repository{
		dir:   dir,
		clock: c,
	}
}

func (r *Repository) Get(_ context.Context, name string) (machine.Config, error) {
	return r.read(r.path(name), name)
}

func (r *Repository) Save(_ context.Context, cfg machine.Config) (machine.Config, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	cfg.SavedAt = r.clock.Now()
	data, err := encodeConfig(cfg)
	if err != nil {
		return machine.Blank, err
	}

	if err = os.MkdirAll(r.dir, 0o700); err != nil {
		return machine.Blank, fmt.Errorf("failed to create config dir: %w", err)
	}

	// write to a temporary file first, so that a reader never sees a partial config
	tmp, err := os.CreateTemp(r.dir, "."+filePrefix+"*")
	if err != nil {
		return machine.Blank, fmt.Errorf("failed to create config file: %w", err)
	}
	defer os.Remove(tmp.Name()) // nolint: errcheck

	if _, err = tmp.Write(data); err != nil {
		tmp.Close() // nolint: errcheck, gosec
		return machine.Blank, fmt.Errorf("failed to write config file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return machine.Blank, fmt.Errorf("failed to write config file: %w", err)
	}
	if err = os.Rename(tmp.Name(), r.path(cfg.Name)); err != nil {
		return machine.Blank, fmt.Errorf("failed to save config file: %w", err)
	}

	return cfg, nil
}

func (r *Repository) Remove(_ context.Context, name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := os.Remove(r.path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return repositories.ErrConfigNotFound
		}
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	return nil
}

// List returns the configurations found in the directory.
// Files that cannot be decoded are skipped.
func (r *Repository) List(_ context.Context) ([]machine.Config, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []machine.Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config dir: %w", err)
	}

	configs := make([]machine.Config, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), filePrefix) {
			continue
		}
		path := filepath.Join(r.dir, entry.Name())
		cfg, readErr := r.read(path, strings.TrimPrefix(entry.Name(), filePrefix))
		if readErr != nil {
			continue
		}
		configs = append(configs, cfg)
	}

	sort.SliceStable(configs, func(i, j int) bool {
		if configs[i].SavedAt.Equal(configs[j].SavedAt) {
			return configs[i].Name < configs[j].Name
		}
		return configs[i].SavedAt.Before(configs[j].SavedAt)
	})

	return configs, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	configs, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(configs), nil
}

// read loads a config file. Files written without a name or a timestamp
// take them from the file name and the file modification time.
func (r *Repository) read(path, name string) (machine.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return machine.Blank, repositories.ErrConfigNotFound
		}
		return machine.Blank, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := decodeConfig(data)
	if err != nil {
		return machine.Blank, err
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	if cfg.SavedAt.IsZero() {
		cfg.SavedAt = modTime(path)
	}
	return cfg, nil
}

func (r *Repository) path(name string) string {
	return filepath.Join(r.dir, filePrefix+machine.Key(name))
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime().UTC()
}

func encodeConfig(cfg machine.Config) ([]byte, error) {
	encoded, err := json.Marshal(storedConfig{
		Name:              cfg.Name,
		Rotors:            cfg.Rotors,
		RotorInit:         cfg.RotorInit,
		RotorSetting:      cfg.RotorSetting,
		ReflectorLetter:   cfg.ReflectorLetter,
		PlugboardSettings: cfg.PlugboardSettings,
		SavedAt:           cfg.SavedAt.UnixNano(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return encoded, nil
}

func decodeConfig(data []byte) (machine.Config, error) {
	var stored storedConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return machine.Blank, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := machine.Config{
		Name:              stored.Name,
		Rotors:            stored.Rotors,
		RotorInit:         stored.RotorInit,
		RotorSetting:      stored.RotorSetting,
		ReflectorLetter:   stored.ReflectorLetter,
		PlugboardSettings: stored.PlugboardSettings,
	}
	if stored.SavedAt != 0 {
		cfg.SavedAt = time.Unix(0, stored.SavedAt).UTC()
	}
	return cfg, nil
}
