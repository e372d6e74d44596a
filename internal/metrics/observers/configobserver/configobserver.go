package configobserver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
)

type ConfigObserver struct {
	configRepo repositories.ConfigRepository
	logger     *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	configRepo repositories.ConfigRepository,
	logger *zerolog.Logger,
) ConfigObserver {
	observer := ConfigObserver{
		configRepo: configRepo,
		logger:     logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o ConfigObserver) Observe(ctx context.Context, m *metrics.Collector) {
	o.observeConfigRepoSize(ctx, m)
}

func (o ConfigObserver) observeConfigRepoSize(ctx context.Context, m *metrics.Collector) {
	count, err := o.configRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe config count")
		return
	}
	m.ConfigRepositorySize.Set(float64(count))
	o.logger.Debug().Int("count", count).Msg("Observed config count")
}
