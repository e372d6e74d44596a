package repositories

import (
	"context"
	"errors"

	"github.com/sergeii/enigma/internal/core/entities/machine"
)

var ErrConfigNotFound = errors.New("the requested configuration was not found")

// ConfigRepository stores named machine configurations.
// Saving a configuration under an existing name replaces it.
// List returns configurations ordered by the time they were saved.
type ConfigRepository interface {
	Get(ctx context.Context, name string) (machine.Config, error)
	Save(ctx context.Context, cfg machine.Config) (machine.Config, error)
	Remove(ctx context.Context, name string) error
	List(ctx context.Context) ([]machine.Config, error)
	Count(ctx context.Context) (int, error)
}
