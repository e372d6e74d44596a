package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/components/api"
	"github.com/sergeii/enigma/cmd/enigma/components/configure"
	"github.com/sergeii/enigma/cmd/enigma/components/encrypt"
	"github.com/sergeii/enigma/cmd/enigma/components/exporter"
	"github.com/sergeii/enigma/cmd/enigma/components/list"
	"github.com/sergeii/enigma/cmd/enigma/components/observer"
	"github.com/sergeii/enigma/cmd/enigma/components/remove"
	"github.com/sergeii/enigma/cmd/enigma/components/show"
	"github.com/sergeii/enigma/cmd/enigma/logging"
	"github.com/sergeii/enigma/cmd/enigma/persistence"
)

func main() {
	cli := commander.CLI{}
	cli.Plugins = kong.Plugins{
		&configure.CLI{},
		&encrypt.CLI{},
		&show.CLI{},
		&list.CLI{},
		&remove.CLI{},
	}
	cli.Serve.Plugins = kong.Plugins{
		&api.CLI{},
		&observer.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("enigma"),
		kong.Description("Enigma machine emulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		fx.Supply(persistence.Config{
			Storage:    cli.Globals.Storage,
			StorageDir: cli.Globals.StorageDir,
			RedisURL:   cli.Globals.RedisURL,
		}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
			Command:   ctx.Command(),
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
		exporter.Module,
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
