package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/rest/model"
)

// ListConfigs returns the stored configurations, oldest first.
func (a *API) ListConfigs(c *gin.Context) {
	items, err := a.container.ListConfigs.Execute(c)
	if err != nil {
		a.logger.Error().Err(err).Msg("Unable to list configurations")
		c.Status(http.StatusInternalServerError)
		return
	}

	result := make([]model.ConfigListItem, 0, len(items))
	for _, cfg := range items {
		result = append(result, model.NewConfigListItemFromDomain(cfg))
	}

	c.JSON(http.StatusOK, result)
}
