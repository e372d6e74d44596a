package configure_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/components/configure"
	"github.com/sergeii/enigma/cmd/enigma/persistence"
	"github.com/sergeii/enigma/internal/core/entities/machine"
	"github.com/sergeii/enigma/internal/core/usecases/saveconfig"
	fileconfigs "github.com/sergeii/enigma/internal/persistence/file/configs"
	"github.com/sergeii/enigma/internal/testutils/factories/configfactory"
	"github.com/sergeii/enigma/internal/testutils/testapp"
)

func runConfigure(dir string, cfg machine.Config, out *bytes.Buffer) error {
	return application.NewBuilder(
		fx.Provide(testapp.NoLogging),
		fx.Supply(persistence.Config{Storage: "file", StorageDir: dir}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(configure.Config{
			Machine: cfg,
			Output:  out,
		}),
		configure.Module,
		fx.NopLogger,
		fx.Invoke(func(*configure.Component) {}),
	).Exec(context.TODO())
}

func TestConfigure_Saves(t *testing.T) {
	dir := t.TempDir()
	out := new(bytes.Buffer)

	err := runConfigure(dir, configfactory.Build(configfactory.WithName("daily")), out)
	require.NoError(t, err)
	assert.Equal(t, "Saved configuration daily\n", out.String())

	stored, err := fileconfigs.New(dir, clockwork.NewRealClock()).Get(context.TODO(), "daily")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 5, 3}, stored.Rotors)
	assert.Equal(t, []int{18, 10, 12}, stored.RotorInit)
	assert.Equal(t, []int{1, 1, 5}, stored.RotorSetting)
	assert.Equal(t, "B", stored.ReflectorLetter)
	assert.Len(t, stored.PlugboardSettings, 10)
}

func TestConfigure_Invalid(t *testing.T) {
	dir := t.TempDir()
	out := new(bytes.Buffer)

	cfg := configfactory.Build(configfactory.WithName("daily"), configfactory.WithRotors(0, 1, 8))
	err := runConfigure(dir, cfg, out)

	assert.ErrorIs(t, err, saveconfig.ErrInvalidConfig)
	assert.Empty(t, out.String())

	count, err := fileconfigs.New(dir, clockwork.NewRealClock()).Count(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
