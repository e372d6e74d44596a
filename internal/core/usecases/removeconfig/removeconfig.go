package removeconfig

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
)

var (
	ErrConfigNotFound       = errors.New("the requested configuration was not found")
	ErrUnableToRemoveConfig = errors.New("unable to remove configuration")
)

type UseCase struct {
	configRepo repositories.ConfigRepository
	metrics    *metrics.Collector
	logger     *zerolog.Logger
}

func New(
	configRepo repositories.ConfigRepository,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		configRepo: configRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, name string) error {
	if err := uc.configRepo.Remove(ctx, name); err != nil {
		if errors.Is(err, repositories.ErrConfigNotFound) {
			uc.logger.Info().Str("name", name).Msg("Removed configuration not found")
			return ErrConfigNotFound
		}
		uc.metrics.ConfigErrors.WithLabelValues("remove").Inc()
		uc.logger.Error().Err(err).Str("name", name).Msg("Failed to remove configuration")
		return ErrUnableToRemoveConfig
	}

	uc.metrics.ConfigsRemoved.Inc()
	uc.logger.Info().Str("name", name).Msg("Removed configuration")

	return nil
}
