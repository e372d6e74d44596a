package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/encrypttext"
	"github.com/sergeii/enigma/internal/rest/model"
)

// EncryptText passes the text through a machine set up from the named configuration.
// The same call decrypts, as the machine is reciprocal.
func (a *API) EncryptText(c *gin.Context) {
	var payload model.Text
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	name := c.Param("name")
	result, err := a.container.EncryptText.Execute(c, encrypttext.NewRequest(name, payload.Text))
	if err != nil {
		switch {
		case errors.Is(err, encrypttext.ErrConfigNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
		case errors.Is(err, encrypttext.ErrInvalidText):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Text may only contain letters A-Z"})
		default:
			a.logger.Error().Err(err).Str("name", name).Msg("Unable to encrypt text")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.Text{Text: result})
}
