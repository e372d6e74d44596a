package api

import (
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/cmd/enigma/container"
)

type API struct {
	container container.Container
	logger    *zerolog.Logger
}

func New(
	logger *zerolog.Logger,
	container container.Container,
) *API {
	return &API{
		container: container,
		logger:    logger,
	}
}
