package encrypttext

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/pkg/enigma"
)

var (
	ErrConfigNotFound       = errors.New("the requested configuration was not found")
	ErrUnableToObtainConfig = errors.New("unable to obtain configuration from repository")
	ErrUnableToBuildMachine = errors.New("unable to build machine from configuration")
	ErrInvalidText          = errors.New("text contains characters outside of the alphabet")
)

type UseCase struct {
	configRepo repositories.ConfigRepository
	metrics    *metrics.Collector
	clock      clockwork.Clock
	logger     *zerolog.Logger
}

func New(
	configRepo repositories.ConfigRepository,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		configRepo: configRepo,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
	}
}

type Request struct {
	name string
	text string
}

func NewRequest(name, text string) Request {
	return Request{
		name: name,
		text: text,
	}
}

// Execute runs the text through a machine freshly assembled from the named configuration.
// Lowercase letters are accepted and upper-cased, anything else outside A-Z is rejected.
func (uc UseCase) Execute(ctx context.Context, req Request) (string, error) {
	started := uc.clock.Now()
	defer func() {
		uc.metrics.EncryptionDurations.Observe(uc.clock.Since(started).Seconds())
	}()

	result, err := uc.encrypt(ctx, req)
	if err != nil {
		uc.metrics.Encryptions.WithLabelValues("error").Inc()
		return "", err
	}

	uc.metrics.Encryptions.WithLabelValues("ok").Inc()
	uc.metrics.EncryptedLetters.Add(float64(len(result)))
	uc.logger.Debug().Str("name", req.name).Int("letters", len(result)).Msg("Encrypted text")

	return result, nil
}

func (uc UseCase) encrypt(ctx context.Context, req Request) (string, error) {
	cfg, err := uc.configRepo.Get(ctx, req.name)
	if err != nil {
		if errors.Is(err, repositories.ErrConfigNotFound) {
			return "", ErrConfigNotFound
		}
		uc.logger.Error().Err(err).Str("name", req.name).Msg("Failed to obtain configuration")
		return "", ErrUnableToObtainConfig
	}

	m, err := cfg.Build()
	if err != nil {
		uc.logger.Warn().Err(err).Str("name", req.name).Msg("Stored configuration is not usable")
		return "", fmt.Errorf("%w: %w", ErrUnableToBuildMachine, err)
	}

	result, err := m.EncryptText(upperASCII(req.text))
	if err != nil {
		if errors.Is(err, enigma.ErrInvalidLetter) {
			return "", fmt.Errorf("%w: %w", ErrInvalidText, err)
		}
		return "", err
	}

	return result, nil
}

// upperASCII folds a-z only, every other byte is left for the machine to reject.
func upperASCII(text string) string {
	folded := []byte(text)
	for i, c := range folded {
		if c >= 'a' && c <= 'z' {
			folded[i] = c - 'a' + 'A'
		}
	}
	return string(folded)
}
