package configs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/repositories"
)

const (
	itemsKey   = "configs:items"
	updatesKey = "configs:updated"
)

type storedConfig struct {
	Name              string            `json:"name"`
	Rotors            []int             `json:"rotors"`
	RotorInit         []int             `json:"rotor_init"`
	RotorSetting      []int             `json:"rotor_setting"`
	ReflectorLetter   string            `json:"reflector_letter"`
	PlugboardSettings machine.Plugboard `json:"plugboard_settings"`
	SavedAt           int64             `json:"saved_at"`
}

type Repository struct {
	client *redis.Client
	clock  clockwork.Clock
}

func New(client *redis.Client, c clockwork.Clock) *Repository {
	return &Repository{
		client: client,
		clock:  c,
	}
}

func (r *Repository) Get(ctx context.Context, name string) (machine.Config, error) {
	item, err := r.client.HGet(ctx, itemsKey, machine.Key(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return machine.Blank, repositories.ErrConfigNotFound
		}
		return machine.Blank, fmt.Errorf("failed to retrieve config by name: %w", err)
	}
	return decodeConfig(item)
}

func (r *Repository) Save(ctx context.Context, cfg machine.Config) (machine.Config, error) {
	cfg.SavedAt = r.clock.Now()
	item, err := encodeConfig(cfg)
	if err != nil {
		return machine.Blank, err
	}
	key := machine.Key(cfg.Name)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, itemsKey, key, item)
		pipe.ZAdd(ctx, updatesKey, redis.Z{
			Score:  float64(cfg.SavedAt.UnixNano()),
			Member: key,
		})
		return nil
	})
	if err != nil {
		return machine.Blank, fmt.Errorf("failed to save config: %w", err)
	}
	return cfg, nil
}

func (r *Repository) Remove(ctx context.Context, name string) error {
	key := machine.Key(name)
	var removed *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, itemsKey, key)
		pipe.ZRem(ctx, updatesKey, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove config: %w", err)
	}
	if removed.Val() == 0 {
		return repositories.ErrConfigNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]machine.Config, error) {
	keys, err := r.client.ZRange(ctx, updatesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch config keys: %w", err)
	}
	if len(keys) == 0 {
		return []machine.Config{}, nil
	}

	items, err := r.client.HMGet(ctx, itemsKey, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch configs: %w", err)
	}

	configs := make([]machine.Config, 0, len(items))
	for _, item := range items {
		// the item could have been removed in between
		encoded, ok := item.(string)
		if !ok {
			continue
		}
		cfg, decodeErr := decodeConfig(encoded)
		if decodeErr != nil {
			return nil, decodeErr
		}
		configs = append(configs, cfg)
	}

	return configs, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.HLen(ctx, itemsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count configs: %w", err)
	}
	return int(count), nil
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
		return nil, fmt.Errorf("failed to marshal config item: %w", err)
	}
	return encoded, nil
}

func decodeConfig(item string) (machine.Config, error) {
	var stored storedConfig
	if err := json.Unmarshal([]byte(item), &stored); err != nil {
		return machine.Blank, fmt.Errorf("failed to unmarshal config item: %w", err)
	}
	return machine.Config{
		Name:              stored.Name,
		Rotors:            stored.Rotors,
		RotorInit:         stored.RotorInit,
		RotorSetting:      stored.RotorSetting,
		ReflectorLetter:   stored.ReflectorLetter,
		PlugboardSettings: stored.PlugboardSettings,
		SavedAt:           time.Unix(0, stored.SavedAt).UTC(),
	}, nil
}
