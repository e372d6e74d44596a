package listconfigs

import (
	"context"
	"errors"
	"fmt"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/repositories"
)

var ErrUnableToListConfigs = errors.New("unable to list configurations")

type UseCase struct {
	configRepo repositories.ConfigRepository
}

func New(
	configRepo repositories.ConfigRepository,
) UseCase {
	return UseCase{
		configRepo: configRepo,
	}
}

func (uc UseCase) Execute(ctx context.Context) ([]machine.Config, error) {
	items, err := uc.configRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnableToListConfigs, err)
	}
	return items, nil
}
