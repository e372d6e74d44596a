package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/cmd/enigma/build"
	"github.com/sergeii/enigma/internal/rest/model"
)

func (a *API) Status(c *gin.Context) {
	c.JSON(http.StatusOK, model.Status{
		BuildTime:    build.Time,
		BuildCommit:  build.Commit,
		BuildVersion: build.Version,
	})
}

// Rotors describes the parts a configuration may be assembled from.
func (a *API) Rotors(c *gin.Context) {
	c.JSON(http.StatusOK, model.NewCatalog())
}
