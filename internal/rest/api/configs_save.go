package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/saveconfig"
	"github.com/sergeii/enigma/internal/rest/model"
)

// SaveConfig creates or replaces the configuration stored under the name in the path.
func (a *API) SaveConfig(c *gin.Context) {
	var payload model.SaveConfig
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	saved, err := a.container.SaveConfig.Execute(c, payload.ToDomain(c.Param("name")))
	if err != nil {
		switch {
		case errors.Is(err, saveconfig.ErrInvalidConfig):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewConfigFromDomain(saved))
}
