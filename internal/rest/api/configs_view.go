package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/getconfig"
	"github.com/sergeii/enigma/internal/rest/model"
)

func (a *API) ViewConfig(c *gin.Context) {
	name := c.Param("name")

	cfg, err := a.container.GetConfig.Execute(c, name)
	if err != nil {
		switch {
		case errors.Is(err, getconfig.ErrConfigNotFound):
			a.logger.Debug().Str("name", name).Msg("Requested configuration not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
		default:
			a.logger.Error().Err(err).Str("name", name).Msg("Unable to obtain configuration")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewConfigFromDomain(cfg))
}
