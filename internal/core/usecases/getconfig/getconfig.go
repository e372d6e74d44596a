package getconfig

import (
	"context"
	"errors"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/repositories"
)

var (
	ErrConfigNotFound       = errors.New("configuration not found")
	ErrUnableToObtainConfig = errors.New("unable to obtain configuration from repository")
)

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

func (uc UseCase) Execute(ctx context.Context, name string) (machine.Config, error) {
	cfg, err := uc.configRepo.Get(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrConfigNotFound):
			return machine.Blank, ErrConfigNotFound
		default:
			return machine.Blank, ErrUnableToObtainConfig
		}
	}
	return cfg, nil
}
