package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/internal/core/repositories"
	fileconfigs "github.com/sergeii/enigma/internal/persistence/file/configs"
	redisconfigs "github.com/sergeii/enigma/internal/persistence/redis/repositories/configs"
)

var ErrUnknownStorage = errors.New("persistence: unknown storage")

type Config struct {
	Storage    string
	StorageDir string
	RedisURL   string
}

func Provide(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) (repositories.ConfigRepository, error) {
	switch cfg.Storage {
	case "file", "":
		logger.Debug().Str("dir", cfg.StorageDir).Msg("Using file storage")
		return fileconfigs.New(cfg.StorageDir, clock), nil
	case "redis":
		rdb, err := provideRedis(lc, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("addr", rdb.Options().Addr).Msg("Using redis storage")
		return redisconfigs.New(rdb, clock), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStorage, cfg.Storage)
	}
}

func provideRedis(lc fx.Lifecycle, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("persistence: invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}
