package testutils

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/components/api"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/testutils/testapp"
)

type TestServerDeps struct {
	Configs   repositories.ConfigRepository
	Collector *metrics.Collector
}

func PrepareTestServer(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, func()) {
	gin.SetMode(gin.ReleaseMode)

	var router *gin.Engine
	fxopts := []fx.Option{
		fx.Provide(testapp.NoLogging),
		fx.Provide(testapp.ProvidePersistence),
		application.Module,
		api.Module,
		fx.NopLogger,
		fx.Populate(&router),
	}
	fxopts = append(fxopts, extra...)

	app := fxtest.New(tb, fxopts...)
	app.RequireStart()

	ts := httptest.NewServer(router)

	return ts, func() {
		defer app.RequireStop()
		defer ts.Close()
	}
}

func PrepareTestServerWithDeps(
	tb fxtest.TB,
	extra ...fx.Option,
) (*httptest.Server, TestServerDeps, func()) {
	var deps TestServerDeps
	extra = append(
		extra,
		fx.Populate(&deps.Configs, &deps.Collector),
	)
	ts, cleanup := PrepareTestServer(tb, extra...)
	return ts, deps, cleanup
}
