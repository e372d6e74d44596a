package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/removeconfig"
)

func (a *API) RemoveConfig(c *gin.Context) {
	if err := a.container.RemoveConfig.Execute(c, c.Param("name")); err != nil {
		switch {
		case errors.Is(err, removeconfig.ErrConfigNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
