package encrypt_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/components/encrypt"
	"github.com/sergeii/enigma/cmd/enigma/persistence"
	"github.com/sergeii/enigma/internal/core/usecases/encrypttext"
	fileconfigs "github.com/sergeii/enigma/internal/persistence/file/configs"
	"github.com/sergeii/enigma/internal/testutils/factories/configfactory"
	"github.com/sergeii/enigma/internal/testutils/testapp"
)

func runEncrypt(dir, name, text string, out *bytes.Buffer) error {
	return application.NewBuilder(
		fx.Provide(testapp.NoLogging),
		fx.Supply(persistence.Config{Storage: "file", StorageDir: dir}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(encrypt.Config{
			Name:   name,
			Text:   text,
			Output: out,
		}),
		encrypt.Module,
		fx.NopLogger,
		fx.Invoke(func(*encrypt.Component) {}),
	).Exec(context.TODO())
}

func TestEncrypt_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := fileconfigs.New(dir, clockwork.NewRealClock())
	configfactory.Save(context.TODO(), repo, configfactory.Build(configfactory.WithName("daily")))

	out := new(bytes.Buffer)
	require.NoError(t, runEncrypt(dir, "daily", "HelloWorld", out))
	assert.Equal(t, "OJWAHLFOZN\n", out.String())

	out.Reset()
	require.NoError(t, runEncrypt(dir, "daily", "OJWAHLFOZN", out))
	assert.Equal(t, "HELLOWORLD\n", out.String())
}

func TestEncrypt_Errors(t *testing.T) {
	dir := t.TempDir()
	repo := fileconfigs.New(dir, clockwork.NewRealClock())
	configfactory.Save(context.TODO(), repo, configfactory.Build(configfactory.WithName("daily")))

	out := new(bytes.Buffer)
	err := runEncrypt(dir, "unknown", "HELLO", out)
	assert.ErrorIs(t, err, encrypttext.ErrConfigNotFound)

	err = runEncrypt(dir, "daily", "HELLO WORLD", out)
	assert.ErrorIs(t, err, encrypttext.ErrInvalidText)

	assert.Empty(t, out.String())
}
