package saveconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
)

var (
	ErrInvalidConfig      = errors.New("invalid machine configuration")
	ErrUnableToSaveConfig = errors.New("unable to save machine configuration")
)

type UseCase struct {
	configRepo repositories.ConfigRepository
	validate   *validator.Validate
	metrics    *metrics.Collector
	logger     *zerolog.Logger
}

func New(
	configRepo repositories.ConfigRepository,
	validate *validator.Validate,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		configRepo: configRepo,
		validate:   validate,
		metrics:    metrics,
		logger:     logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, cfg machine.Config) (machine.Config, error) {
	if err := uc.check(cfg); err != nil {
		uc.metrics.ConfigErrors.WithLabelValues("save").Inc()
		uc.logger.Warn().Err(err).Str("name", cfg.Name).Msg("Refused to save invalid configuration")
		return machine.Blank, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	saved, err := uc.configRepo.Save(ctx, cfg)
	if err != nil {
		uc.metrics.ConfigErrors.WithLabelValues("save").Inc()
		uc.logger.Error().Err(err).Str("name", cfg.Name).Msg("Failed to save configuration")
		return machine.Blank, ErrUnableToSaveConfig
	}

	uc.metrics.ConfigsSaved.Inc()
	uc.logger.Info().
		Str("name", saved.Name).Ints("rotors", saved.Rotors).Str("reflector", saved.ReflectorLetter).
		Msg("Saved configuration")

	return saved, nil
}

func (uc UseCase) check(cfg machine.Config) error {
	if err := cfg.Validate(uc.validate); err != nil {
		return err
	}
	// the tags cover the ranges, assembling covers whatever is left
	if _, err := cfg.Build(); err != nil {
		return err
	}
	return nil
}
